package memberstub

import (
	"context"

	"gorm.io/gorm"

	domain "fondo-backend/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is an in-memory member store for tests. Misses report
// gorm.ErrRecordNotFound, like the real adapter.
type Repo struct {
	byID    map[string]*domain.Member
	byEmail map[string]*domain.Member
}

func New(members ...*domain.Member) *Repo {
	r := &Repo{byID: map[string]*domain.Member{}, byEmail: map[string]*domain.Member{}}
	for _, m := range members {
		r.byID[m.MemberID] = m
		r.byEmail[m.Email] = m
	}
	return r
}

func (r *Repo) Create(_ context.Context, m *domain.Member) error {
	r.byID[m.MemberID] = m
	r.byEmail[m.Email] = m
	return nil
}

func (r *Repo) GetByMemberID(_ context.Context, memberID string) (*domain.Member, error) {
	if m, ok := r.byID[memberID]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *Repo) GetByEmail(_ context.Context, email string) (*domain.Member, error) {
	if m, ok := r.byEmail[email]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}
