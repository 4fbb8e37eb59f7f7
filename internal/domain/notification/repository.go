package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// ListByMemberID returns notifications newest-first.
	ListByMemberID(ctx context.Context, memberID string) ([]Notification, error)
}

// Notifier is the collaborator usecases call after a successful loan request,
// decision, or payment registration. Failures are the caller's to log, not to
// roll back over.
type Notifier interface {
	Notify(ctx context.Context, memberID string, kind Kind, title, body string) error
}
