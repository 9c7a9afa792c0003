package provider

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultResponseMinutes is assumed for profiles that never recorded a response time.
const DefaultResponseMinutes = 60

// Profile is a provider's scoring identity. A user owns one to three of them.
type Profile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	DisplayName        string    `gorm:"column:display_name" json:"displayName"`
	AvgResponseMinutes *int      `gorm:"column:avg_response_minutes" json:"avgResponseMinutes,omitempty"`
	// TotalScore is the last persisted GigScore, stored as a decimal string.
	TotalScore string `gorm:"column:total_score;not null;default:'0'" json:"totalScore"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Profile) TableName() string { return "profile" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ResponseMinutes returns the stored average or the default when unset.
func (p *Profile) ResponseMinutes() int {
	if p == nil || p.AvgResponseMinutes == nil {
		return DefaultResponseMinutes
	}
	return *p.AvgResponseMinutes
}
