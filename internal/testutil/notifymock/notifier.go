package notifymock

import (
	"context"

	"fondo-backend/internal/domain/notification"
)

var _ notification.Notifier = (*Notifier)(nil)

type Call struct {
	MemberID string
	Kind     notification.Kind
	Title    string
	Body     string
}

// Notifier records every Notify call and optionally fails with Err.
type Notifier struct {
	Calls []Call
	Err   error
}

func (n *Notifier) Notify(_ context.Context, memberID string, kind notification.Kind, title, body string) error {
	n.Calls = append(n.Calls, Call{MemberID: memberID, Kind: kind, Title: title, Body: body})
	return n.Err
}
