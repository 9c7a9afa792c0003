package community

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type CommunityStatsRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.CommunityActivityStats, error)
	Increment(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta types.CommunityDelta) (*types.CommunityActivityStats, error)
}

type communityStatsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommunityStatsRepo(db *gorm.DB, baseLog *logger.Logger) CommunityStatsRepo {
	repoLog := baseLog.With("repo", "CommunityStatsRepo")
	return &communityStatsRepo{db: db, log: repoLog}
}

// GetByUserID returns nil, nil when the user has no counters yet.
func (cr *communityStatsRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.CommunityActivityStats, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.CommunityActivityStats
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// Increment adds delta to the user's counters in one upsert statement, so
// concurrent increments never lose each other's deltas.
func (cr *communityStatsRepo) Increment(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta types.CommunityDelta) (*types.CommunityActivityStats, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	row := &types.CommunityActivityStats{
		UserID:          userID,
		Posts:           delta.Posts,
		Comments:        delta.Comments,
		HelpfulReacts:   delta.HelpfulReacts,
		AcceptedAnswers: delta.AcceptedAnswers,
		UpdatedAt:       time.Now().UTC(),
	}
	add := func(col string) clause.Expr {
		return gorm.Expr("community_activity_stats." + col + " + excluded." + col)
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"posts":            add("posts"),
				"comments":         add("comments"),
				"helpful_reacts":   add("helpful_reacts"),
				"accepted_answers": add("accepted_answers"),
				"updated_at":       gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(row).Error; err != nil {
		return nil, err
	}

	return cr.GetByUserID(ctx, transaction, userID)
}
