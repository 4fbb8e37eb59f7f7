package mysql

import (
	"context"
	"sort"

	"gorm.io/gorm"

	savingDomain "fondo-backend/internal/domain/saving"
)

type SavingRepository struct{ db *gorm.DB }

func NewSavingRepository(db *gorm.DB) *SavingRepository { return &SavingRepository{db: db} }

func (r *SavingRepository) Create(ctx context.Context, s *savingDomain.Saving) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

// ListByOwnerID returns contributions newest-first, with the same
// ordered-then-unordered fallback as the loan listing.
func (r *SavingRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]savingDomain.Saving, error) {
	var out []savingDomain.Saving
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC, id DESC").
		Find(&out).Error
	if err == nil {
		return out, nil
	}

	out = out[:0]
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *SavingRepository) TotalByOwnerID(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&savingDomain.Saving{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, translate(err)
}
