package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/data/dberr"
	"github.com/yungbote/gigifypro-backend/internal/data/repos"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/observability"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"github.com/yungbote/gigifypro-backend/internal/scoring"
)

type CommunityService interface {
	Score(ctx context.Context, userID uuid.UUID) (int, error)
	IncrementStats(ctx context.Context, userID uuid.UUID, delta types.CommunityDelta) (*types.CommunityActivityStats, error)
}

type communityService struct {
	db        *gorm.DB
	log       *logger.Logger
	metrics   *observability.Metrics
	statsRepo repos.CommunityStatsRepo
}

func NewCommunityService(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, statsRepo repos.CommunityStatsRepo) CommunityService {
	serviceLog := log.With("service", "CommunityService")
	return &communityService{
		db:        db,
		log:       serviceLog,
		metrics:   metrics,
		statsRepo: statsRepo,
	}
}

// Score is 0 for users without a counters row.
func (cs *communityService) Score(ctx context.Context, userID uuid.UUID) (score int, err error) {
	start := time.Now()
	defer func() { cs.metrics.ObserveScore("community", time.Since(start), err) }()

	stats, err := cs.statsRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return 0, dberr.Map("community.score", err)
	}
	return scoring.CommunityScore(stats), nil
}

func (cs *communityService) IncrementStats(ctx context.Context, userID uuid.UUID, delta types.CommunityDelta) (*types.CommunityActivityStats, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if delta.Posts < 0 || delta.Comments < 0 || delta.HelpfulReacts < 0 || delta.AcceptedAnswers < 0 {
		return nil, invalid("community counters only grow; deltas must be non-negative")
	}
	if delta.IsZero() {
		stats, err := cs.statsRepo.GetByUserID(ctx, nil, userID)
		if err != nil {
			return nil, dberr.Map("community.get", err)
		}
		if stats == nil {
			stats = &types.CommunityActivityStats{UserID: userID}
		}
		return stats, nil
	}

	stats, err := cs.statsRepo.Increment(ctx, nil, userID, delta)
	if err != nil {
		cs.log.Error("community increment failed", "user_id", userID, "error", err)
		return nil, dberr.Map("community.increment", err)
	}
	cs.log.Debug("community stats incremented", "user_id", userID,
		"posts", delta.Posts, "comments", delta.Comments,
		"helpful_reacts", delta.HelpfulReacts, "accepted_answers", delta.AcceptedAnswers)
	return stats, nil
}
