package provider

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRating applies when a review was left without an explicit rating.
const DefaultRating = 5

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkerID uuid.UUID `gorm:"type:uuid;not null;index;column:worker_id" json:"workerId"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index;column:client_id" json:"clientId"`
	Rating   *int      `gorm:"column:rating;default:5" json:"rating,omitempty"`
	Comment  string    `gorm:"column:comment" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Review) TableName() string { return "review" }

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
