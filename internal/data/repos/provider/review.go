package provider

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

// ReviewStats summarize every review left for a worker.
type ReviewStats struct {
	Count         int64
	AverageRating float64
	Likes         int64
}

type ReviewRepo interface {
	Create(ctx context.Context, tx *gorm.DB, reviews []*types.Review) ([]*types.Review, error)
	StatsByWorker(ctx context.Context, tx *gorm.DB, workerID uuid.UUID) (ReviewStats, error)
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	repoLog := baseLog.With("repo", "ReviewRepo")
	return &reviewRepo{db: db, log: repoLog}
}

func (rr *reviewRepo) Create(ctx context.Context, tx *gorm.DB, reviews []*types.Review) ([]*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(reviews) == 0 {
		return []*types.Review{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// StatsByWorker treats a missing rating as 5 stars; such reviews and
// 5-star reviews both count as likes.
func (rr *reviewRepo) StatsByWorker(ctx context.Context, tx *gorm.DB, workerID uuid.UUID) (ReviewStats, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var row struct {
		Count   int64
		Average float64
		Likes   int64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Review{}).
		Select(
			"COUNT(*) AS count, "+
				"COALESCE(AVG(COALESCE(rating, ?)), 0) AS average, "+
				"COALESCE(SUM(CASE WHEN rating IS NULL OR rating = ? THEN 1 ELSE 0 END), 0) AS likes",
			types.DefaultRating, types.DefaultRating,
		).
		Where("worker_id = ?", workerID).
		Scan(&row).Error; err != nil {
		return ReviewStats{}, err
	}
	return ReviewStats{Count: row.Count, AverageRating: row.Average, Likes: row.Likes}, nil
}
