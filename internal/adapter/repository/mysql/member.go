package mysql

import (
	"context"

	"gorm.io/gorm"

	memberDomain "fondo-backend/internal/domain/member"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *MemberRepository) GetByMemberID(ctx context.Context, memberID string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&out)
	return &out, translate(res.Error)
}

func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, translate(res.Error)
}
