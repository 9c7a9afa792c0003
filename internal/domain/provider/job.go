package provider

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobStatusRequested = "requested"
	JobStatusCompleted = "completed"
)

// Job is an engagement between a profile and a client.
type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index;column:profile_id" json:"profileId"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index;column:client_id" json:"clientId"`
	Status    string    `gorm:"column:status;not null;default:'requested'" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Job) TableName() string { return "job" }

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
