package community

import (
	"time"

	"github.com/google/uuid"
)

// ActivityStats are per-user forum counters. They only ever grow.
type ActivityStats struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"userId"`
	Posts           int64     `gorm:"not null;default:0;column:posts" json:"posts"`
	Comments        int64     `gorm:"not null;default:0;column:comments" json:"comments"`
	HelpfulReacts   int64     `gorm:"not null;default:0;column:helpful_reacts" json:"helpfulReacts"`
	AcceptedAnswers int64     `gorm:"not null;default:0;column:accepted_answers" json:"acceptedAnswers"`

	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (ActivityStats) TableName() string { return "community_activity_stats" }

// Delta is a partial increment; omitted counters add zero.
type Delta struct {
	Posts           int64 `json:"posts"`
	Comments        int64 `json:"comments"`
	HelpfulReacts   int64 `json:"helpfulReacts"`
	AcceptedAnswers int64 `json:"acceptedAnswers"`
}

func (d Delta) IsZero() bool {
	return d.Posts == 0 && d.Comments == 0 && d.HelpfulReacts == 0 && d.AcceptedAnswers == 0
}
