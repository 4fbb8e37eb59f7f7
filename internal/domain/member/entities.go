package member

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("member not found")
	ErrInvalidRole = errors.New("role must be asociado or cliente")
)

// Role is the cooperative membership tier. Asociados get the lower default
// loan rate and can back other members' loans; clientes pay the higher rate
// and need an asociado as co-signer.
type Role string

const (
	RoleAsociado Role = "asociado"
	RoleCliente  Role = "cliente"
)

func (r Role) Valid() bool { return r == RoleAsociado || r == RoleCliente }

type Member struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	MemberID   string         `gorm:"size:32;uniqueIndex:ux_members_member_id" json:"member_id"`
	Name       string         `gorm:"size:120" json:"name"`
	Email      string         `gorm:"size:190;uniqueIndex:ux_members_email" json:"email"`
	DocumentID string         `gorm:"size:32" json:"document_id"`
	Role       Role           `gorm:"size:16;default:'asociado'" json:"role"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }
