package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
}
