package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no MySQL column types) ---

type memberSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	MemberID   string         `gorm:"size:32;column:member_id"`
	Name       string         `gorm:"column:name"`
	Email      string         `gorm:"column:email"`
	DocumentID string         `gorm:"column:document_id"`
	Role       string         `gorm:"type:text;column:role"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (memberSQLite) TableName() string { return "members" }

type loanSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	LoanID         string         `gorm:"size:32;column:loan_id"`
	OwnerID        string         `gorm:"size:32;column:owner_id"`
	CosignerID     *string        `gorm:"column:cosigner_id"`
	CosignerAccept bool           `gorm:"column:cosigner_accept"`
	Amount         int64          `gorm:"column:amount"`
	Balance        int64          `gorm:"column:balance"`
	TermMonths     int            `gorm:"column:term_months"`
	AnnualRatePct  float64        `gorm:"column:annual_rate_pct"`
	MonthlyPayment int64          `gorm:"column:monthly_payment"`
	Description    string         `gorm:"column:description"`
	Status         string         `gorm:"type:text;column:status"`
	RejectReason   string         `gorm:"column:reject_reason"`
	RequestedAt    time.Time      `gorm:"column:requested_at"`
	ApprovedAt     *time.Time     `gorm:"column:approved_at"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	PaymentID    string    `gorm:"size:32;column:payment_id"`
	LoanID       uint64    `gorm:"column:loan_id"`
	PayerID      string    `gorm:"size:32;column:payer_id"`
	Amount       int64     `gorm:"column:amount"`
	BalanceAfter int64     `gorm:"column:balance_after"`
	ReceiptURL   string    `gorm:"column:receipt_url"`
	Status       string    `gorm:"type:text;column:status"`
	PaidAt       time.Time `gorm:"column:paid_at"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type savingSQLite struct {
	ID                 uint64    `gorm:"primaryKey;column:id"`
	SavingID           string    `gorm:"size:32;column:saving_id"`
	OwnerID            string    `gorm:"size:32;column:owner_id"`
	Amount             int64     `gorm:"column:amount"`
	Description        string    `gorm:"column:description"`
	AccumulatedBalance int64     `gorm:"column:accumulated_balance"`
	ReceiptURL         string    `gorm:"column:receipt_url"`
	Status             string    `gorm:"type:text;column:status"`
	Date               time.Time `gorm:"column:date"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

func (savingSQLite) TableName() string { return "savings" }

type notificationSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	NotificationID string    `gorm:"size:32;column:notification_id"`
	MemberID       string    `gorm:"size:32;column:member_id"`
	Kind           string    `gorm:"type:text;column:kind"`
	Title          string    `gorm:"column:title"`
	Body           string    `gorm:"column:body"`
	Read           bool      `gorm:"column:read"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas the caller names, NOT the domain models.
func openTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
