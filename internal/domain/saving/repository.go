package saving

import "context"

type Repository interface {
	Create(ctx context.Context, s *Saving) error
	// ListByOwnerID returns contributions newest-first by date.
	ListByOwnerID(ctx context.Context, ownerID string) ([]Saving, error)
	// TotalByOwnerID sums all contribution amounts for the owner.
	TotalByOwnerID(ctx context.Context, ownerID string) (int64, error)
}
