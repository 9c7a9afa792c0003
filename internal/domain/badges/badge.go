package badges

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Type string

const (
	TypeSafetyVerified   Type = "safety_verified"
	TypeBusinessReady    Type = "business_ready"
	TypeVerifiedIdentity Type = "verified_identity"
)

// Badge is a catalog entry. Award thresholds live in the evaluator, not here.
type Badge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Type        Type      `gorm:"uniqueIndex;not null;column:type" json:"type" yaml:"type"`
	Name        string    `gorm:"not null;column:name" json:"name" yaml:"name"`
	Description string    `gorm:"column:description" json:"description" yaml:"description"`
	Category    string    `gorm:"column:category" json:"category" yaml:"category"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt" yaml:"-"`
}

func (Badge) TableName() string { return "badge" }

func (b *Badge) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// UserBadge records an award. The composite key makes a second award a no-op.
type UserBadge struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"userId"`
	BadgeID  uuid.UUID `gorm:"type:uuid;primaryKey;column:badge_id" json:"badgeId"`
	EarnedAt time.Time `gorm:"not null;column:earned_at" json:"earnedAt"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
}

func (UserBadge) TableName() string { return "user_badge" }
