package saving

import (
	"errors"
	"time"
)

var ErrInvalidAmount = errors.New("saving amount must be positive")

const StatusConfirmed = "confirmed"

// Saving is one monthly contribution ("aporte"). Append-only: the normal
// flow never mutates or deletes a contribution.
type Saving struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	SavingID string `gorm:"column:saving_id;type:char(32);not null;uniqueIndex:ux_savings_saving_id" json:"saving_id"`
	OwnerID  string `gorm:"column:owner_id;type:char(32);not null;index:idx_savings_owner" json:"owner_id"`
	// Whole Colombian pesos.
	Amount      int64  `gorm:"column:amount;not null" json:"amount"`
	Description string `gorm:"column:description;type:text" json:"description"`
	// Running total for the owner at the time of the contribution; display only.
	AccumulatedBalance int64     `gorm:"column:accumulated_balance" json:"accumulated_balance,omitempty"`
	ReceiptURL         string    `gorm:"column:receipt_url;type:text" json:"receipt_url,omitempty"`
	Status             string    `gorm:"column:status;size:16;default:'confirmed'" json:"status"`
	Date               time.Time `gorm:"column:date;not null;index" json:"date"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Saving) TableName() string { return "savings" }
