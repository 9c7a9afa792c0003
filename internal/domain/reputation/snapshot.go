package reputation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScoreSnapshot is an append-only record of each persisted recomputation.
type ScoreSnapshot struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_score_snapshot_profile_time,priority:1;column:profile_id" json:"profileId"`
	TotalScore int            `gorm:"not null;column:total_score" json:"totalScore"`
	Components datatypes.JSON `gorm:"column:components" json:"components"`
	ComputedAt time.Time      `gorm:"not null;index:idx_score_snapshot_profile_time,priority:2;column:computed_at" json:"computedAt"`
}

func (ScoreSnapshot) TableName() string { return "score_snapshot" }

func (s *ScoreSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
