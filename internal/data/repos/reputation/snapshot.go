package reputation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

const defaultSnapshotLimit = 20

type ScoreSnapshotRepo interface {
	Create(ctx context.Context, tx *gorm.DB, snapshots []*types.ScoreSnapshot) ([]*types.ScoreSnapshot, error)
	ListByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, limit int) ([]*types.ScoreSnapshot, error)
}

type scoreSnapshotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScoreSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) ScoreSnapshotRepo {
	repoLog := baseLog.With("repo", "ScoreSnapshotRepo")
	return &scoreSnapshotRepo{db: db, log: repoLog}
}

func (sr *scoreSnapshotRepo) Create(ctx context.Context, tx *gorm.DB, snapshots []*types.ScoreSnapshot) ([]*types.ScoreSnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(snapshots) == 0 {
		return []*types.ScoreSnapshot{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// ListByProfile returns the newest snapshots first.
func (sr *scoreSnapshotRepo) ListByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, limit int) ([]*types.ScoreSnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if limit <= 0 {
		limit = defaultSnapshotLimit
	}
	var results []*types.ScoreSnapshot
	if err := transaction.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("computed_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
