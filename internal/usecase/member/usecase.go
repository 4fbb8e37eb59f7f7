package member

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fondo-backend/internal/domain/member"
	"fondo-backend/pkg/id"
)

var ErrEmailTaken = errors.New("email already registered")

type Usecase struct{ repo member.Repository }

func NewUsecase(r member.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	DocumentID string `json:"document_id"`
	Role       string `json:"role"`
}

// Register creates a member. The role defaults to asociado, matching the
// cooperative's sign-up flow.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*member.Member, error) {
	role := member.Role(in.Role)
	if in.Role == "" {
		role = member.RoleAsociado
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", member.ErrInvalidRole, in.Role)
	}

	_, err := u.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	m := &member.Member{
		MemberID:   id.NewID32(),
		Name:       in.Name,
		Email:      in.Email,
		DocumentID: in.DocumentID,
		Role:       role,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *Usecase) Get(ctx context.Context, memberID string) (*member.Member, error) {
	m, err := u.repo.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
