package volunteer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

// CountedStatuses are the moderation states that earn volunteer credit.
var CountedStatuses = []string{StatusApproved, StatusCompleted}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// ServiceEntry is a claimed block of donated service on a profile.
type ServiceEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID   uuid.UUID       `gorm:"type:uuid;not null;index;column:profile_id" json:"profileId"`
	Title       string          `gorm:"column:title" json:"title"`
	Description string          `gorm:"column:description" json:"description"`
	Hours       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0;column:hours" json:"hours"`
	ValueCents  int64           `gorm:"not null;default:0;column:value_cents" json:"valueCents"`
	Rating      *int            `gorm:"column:rating" json:"rating,omitempty"`
	Status      string          `gorm:"not null;default:'pending';index;column:status" json:"status"`
	VerifiedBy  *uuid.UUID      `gorm:"type:uuid;column:verified_by" json:"verifiedBy,omitempty"`
	CompletedAt *time.Time      `gorm:"column:completed_at" json:"completedAt,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (ServiceEntry) TableName() string { return "volunteer_service_entry" }

func (e *ServiceEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EffectiveAt is the completion time when present, else the creation time.
func (e *ServiceEntry) EffectiveAt() time.Time {
	if e.CompletedAt != nil && !e.CompletedAt.IsZero() {
		return *e.CompletedAt
	}
	return e.CreatedAt
}
