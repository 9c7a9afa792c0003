package badges

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type TrainingProgressRepo interface {
	CountCompleted(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	MarkCompleted(ctx context.Context, tx *gorm.DB, userID uuid.UUID, articleID string, at time.Time) error
}

type trainingProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrainingProgressRepo(db *gorm.DB, baseLog *logger.Logger) TrainingProgressRepo {
	repoLog := baseLog.With("repo", "TrainingProgressRepo")
	return &trainingProgressRepo{db: db, log: repoLog}
}

func (tr *trainingProgressRepo) CountCompleted(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.TrainingProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkCompleted is idempotent; the first completion time is kept.
func (tr *trainingProgressRepo) MarkCompleted(ctx context.Context, tx *gorm.DB, userID uuid.UUID, articleID string, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"completed":    true,
				"completed_at": gorm.Expr("COALESCE(training_progress.completed_at, excluded.completed_at)"),
				"updated_at":   gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(&types.TrainingProgress{
			UserID:      userID,
			ArticleID:   articleID,
			Completed:   true,
			CompletedAt: &at,
			UpdatedAt:   at,
		}).Error
}
