package mysql

import (
	"context"

	"gorm.io/gorm"

	notifDomain "fondo-backend/internal/domain/notification"
	"fondo-backend/pkg/id"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notifDomain.Notification) error {
	return translate(r.db.WithContext(ctx).Create(n).Error)
}

func (r *NotificationRepository) ListByMemberID(ctx context.Context, memberID string) ([]notifDomain.Notification, error) {
	var out []notifDomain.Notification
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, translate(err)
}

// StoreNotifier satisfies notification.Notifier by persisting the record;
// the mobile client polls the listing endpoint.
type StoreNotifier struct{ repo notifDomain.Repository }

func NewStoreNotifier(repo notifDomain.Repository) *StoreNotifier {
	return &StoreNotifier{repo: repo}
}

func (s *StoreNotifier) Notify(ctx context.Context, memberID string, kind notifDomain.Kind, title, body string) error {
	return s.repo.Create(ctx, &notifDomain.Notification{
		NotificationID: id.NewID32(),
		MemberID:       memberID,
		Kind:           kind,
		Title:          title,
		Body:           body,
	})
}
