package badges

import (
	"time"

	"github.com/google/uuid"
)

// TrainingProgress tracks a user's completion of one knowledge-base article.
type TrainingProgress struct {
	UserID      uuid.UUID  `gorm:"type:uuid;primaryKey;column:user_id" json:"userId"`
	ArticleID   string     `gorm:"primaryKey;column:article_id" json:"articleId"`
	Completed   bool       `gorm:"not null;default:false;column:completed" json:"completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`

	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (TrainingProgress) TableName() string { return "training_progress" }
