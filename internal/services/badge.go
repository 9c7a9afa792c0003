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

type BadgeService interface {
	CheckAndAward(ctx context.Context, userID uuid.UUID) ([]types.BadgeType, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.UserBadge, error)
	SeedCatalog(ctx context.Context, catalog []types.Badge) error
}

type badgeService struct {
	db           *gorm.DB
	log          *logger.Logger
	metrics      *observability.Metrics
	bus          ScoreEventPublisher
	userRepo     repos.UserRepo
	badgeRepo    repos.BadgeRepo
	trainingRepo repos.TrainingProgressRepo
	now          func() time.Time
}

func NewBadgeService(
	db *gorm.DB,
	log *logger.Logger,
	metrics *observability.Metrics,
	bus ScoreEventPublisher,
	userRepo repos.UserRepo,
	badgeRepo repos.BadgeRepo,
	trainingRepo repos.TrainingProgressRepo,
) BadgeService {
	serviceLog := log.With("service", "BadgeService")
	return &badgeService{
		db:           db,
		log:          serviceLog,
		metrics:      metrics,
		bus:          bus,
		userRepo:     userRepo,
		badgeRepo:    badgeRepo,
		trainingRepo: trainingRepo,
		now:          time.Now,
	}
}

// CheckAndAward returns only the badges this call inserted. Unknown users get
// an empty list. Awards are insert-or-ignore, so repeated or concurrent calls
// never duplicate a badge.
func (bs *badgeService) CheckAndAward(ctx context.Context, userID uuid.UUID) ([]types.BadgeType, error) {
	awarded := []types.BadgeType{}

	u, err := bs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, dberr.Map("badges.user", err)
	}
	if u == nil {
		return awarded, nil
	}

	heldTypes, err := bs.badgeRepo.ListHeldTypes(ctx, nil, userID)
	if err != nil {
		return nil, dberr.Map("badges.held", err)
	}
	completed, err := bs.trainingRepo.CountCompleted(ctx, nil, userID)
	if err != nil {
		return nil, dberr.Map("badges.training", err)
	}

	held := make(map[types.BadgeType]bool, len(heldTypes))
	for _, t := range heldTypes {
		held[t] = true
	}
	eligible := scoring.EligibleBadges(scoring.BadgeState{
		Role:               u.Role,
		CompletedTrainings: completed,
		Held:               held,
	})
	if len(eligible) == 0 {
		return awarded, nil
	}

	catalog, err := bs.badgeRepo.GetByTypes(ctx, nil, eligible)
	if err != nil {
		return nil, dberr.Map("badges.catalog", err)
	}
	byType := make(map[types.BadgeType]*types.Badge, len(catalog))
	for _, b := range catalog {
		byType[b.Type] = b
	}

	now := bs.now().UTC()
	for _, t := range eligible {
		badge := byType[t]
		if badge == nil {
			bs.log.Warn("badge type missing from catalog", "badge", t)
			continue
		}
		inserted, err := bs.badgeRepo.Award(ctx, nil, userID, badge.ID, now)
		if err != nil {
			return nil, dberr.Map("badges.award", err)
		}
		if inserted {
			awarded = append(awarded, t)
			bs.metrics.IncBadgeAward(string(t))
		}
	}

	if len(awarded) > 0 {
		bs.log.Info("badges awarded", "user_id", userID, "badges", awarded)
		bs.publish(ctx, userID, awarded, now)
	}
	return awarded, nil
}

func (bs *badgeService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.UserBadge, error) {
	awards, err := bs.badgeRepo.ListAwardsByUser(ctx, nil, userID)
	if err != nil {
		return nil, dberr.Map("badges.list", err)
	}
	return awards, nil
}

func (bs *badgeService) SeedCatalog(ctx context.Context, catalog []types.Badge) error {
	if err := bs.badgeRepo.UpsertCatalog(ctx, nil, catalog); err != nil {
		return dberr.Map("badges.seed", err)
	}
	bs.log.Info("badge catalog seeded", "count", len(catalog))
	return nil
}

func (bs *badgeService) publish(ctx context.Context, userID uuid.UUID, awarded []types.BadgeType, at time.Time) {
	if bs.bus == nil {
		return
	}
	names := make([]string, 0, len(awarded))
	for _, t := range awarded {
		names = append(names, string(t))
	}
	uid := userID
	err := bs.bus.Publish(ctx, types.ScoreEvent{Type: types.EventBadgesAwarded, UserID: &uid, Badges: names, At: at})
	bs.metrics.IncBusPublish(types.EventBadgesAwarded, err)
	if err != nil {
		bs.log.Warn("badge event publish failed", "error", err)
	}
}
