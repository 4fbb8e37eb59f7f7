package notification

import "time"

// Kind tags what triggered the notification.
type Kind string

const (
	KindLoanRequested Kind = "loan_requested"
	KindLoanApproved  Kind = "loan_approved"
	KindLoanRejected  Kind = "loan_rejected"
	KindPayment       Kind = "payment_registered"
	KindSaving        Kind = "saving_registered"
)

type Notification struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	NotificationID string    `gorm:"column:notification_id;type:char(32);not null;uniqueIndex:ux_notifications_id" json:"notification_id"`
	MemberID       string    `gorm:"column:member_id;type:char(32);not null;index:idx_notifications_member" json:"member_id"`
	Kind           Kind      `gorm:"column:kind;size:32;not null" json:"kind"`
	Title          string    `gorm:"column:title;size:190" json:"title"`
	Body           string    `gorm:"column:body;type:text" json:"body"`
	Read           bool      `gorm:"column:read;default:false" json:"read"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
