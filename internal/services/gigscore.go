package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/data/dberr"
	"github.com/yungbote/gigifypro-backend/internal/data/repos"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/observability"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"github.com/yungbote/gigifypro-backend/internal/scoring"
)

const noProfileMessage = "No provider profile yet. Create a profile to start building your GigScore."

var tracer = otel.Tracer("github.com/yungbote/gigifypro-backend/internal/services")

// ScoreEventPublisher receives committed score and badge changes.
type ScoreEventPublisher interface {
	Publish(ctx context.Context, evt types.ScoreEvent) error
}

// GigScorePreview is the caller's own breakdown plus the raw sub-scores that
// fed the weighted community and volunteer components.
type GigScorePreview struct {
	scoring.Breakdown
	ProfileID      *uuid.UUID       `json:"profileId,omitempty"`
	CommunityScore int              `json:"communityScore"`
	VolunteerScore int              `json:"volunteerScore"`
	Signals        *scoring.Signals `json:"signals,omitempty"`
	Message        string           `json:"message,omitempty"`
}

type RecomputeSummary struct {
	Profiles int `json:"profiles"`
	Updated  int `json:"updated"`
	Failed   int `json:"failed"`
}

type GigScoreService interface {
	Calculate(ctx context.Context, profileID uuid.UUID) (*scoring.Breakdown, error)
	Update(ctx context.Context, profileID uuid.UUID) (*scoring.Breakdown, error)
	PreviewForUser(ctx context.Context, userID uuid.UUID) (*GigScorePreview, error)
	History(ctx context.Context, profileID uuid.UUID, limit int) ([]*types.ScoreSnapshot, error)
	RecomputeAll(ctx context.Context, concurrency int) (RecomputeSummary, error)
}

type gigScoreService struct {
	db           *gorm.DB
	log          *logger.Logger
	metrics      *observability.Metrics
	bus          ScoreEventPublisher
	profileRepo  repos.ProfileRepo
	reviewRepo   repos.ReviewRepo
	jobRepo      repos.JobRepo
	snapshotRepo repos.ScoreSnapshotRepo
	community    CommunityService
	volunteer    VolunteerService
	now          func() time.Time
}

func NewGigScoreService(
	db *gorm.DB,
	log *logger.Logger,
	metrics *observability.Metrics,
	bus ScoreEventPublisher,
	profileRepo repos.ProfileRepo,
	reviewRepo repos.ReviewRepo,
	jobRepo repos.JobRepo,
	snapshotRepo repos.ScoreSnapshotRepo,
	community CommunityService,
	volunteer VolunteerService,
) GigScoreService {
	serviceLog := log.With("service", "GigScoreService")
	return &gigScoreService{
		db:           db,
		log:          serviceLog,
		metrics:      metrics,
		bus:          bus,
		profileRepo:  profileRepo,
		reviewRepo:   reviewRepo,
		jobRepo:      jobRepo,
		snapshotRepo: snapshotRepo,
		community:    community,
		volunteer:    volunteer,
		now:          time.Now,
	}
}

// Calculate has no side effects.
func (gs *gigScoreService) Calculate(ctx context.Context, profileID uuid.UUID) (*scoring.Breakdown, error) {
	profile, err := gs.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	_, b, err := gs.calculate(ctx, profile)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update recomputes and persists the total on the profile together with a
// snapshot of the breakdown. Concurrent updates are last-write-wins.
func (gs *gigScoreService) Update(ctx context.Context, profileID uuid.UUID) (*scoring.Breakdown, error) {
	profile, err := gs.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	_, b, err := gs.calculate(ctx, profile)
	if err != nil {
		return nil, err
	}

	components, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode breakdown: %w", err)
	}
	now := gs.now().UTC()
	total := decimal.NewFromInt(int64(b.TotalScore)).String()

	err = gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := gs.profileRepo.UpdateScore(ctx, tx, profile.ID, total, now); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return dberr.Map("gigscore.update.profile", err)
		}
		if _, err := gs.snapshotRepo.Create(ctx, tx, []*types.ScoreSnapshot{{
			ProfileID:  profile.ID,
			TotalScore: b.TotalScore,
			Components: datatypes.JSON(components),
			ComputedAt: now,
		}}); err != nil {
			return dberr.Map("gigscore.update.snapshot", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	gs.metrics.ObservePersistedScore(b.TotalScore)
	gs.log.Info("gigscore persisted", "profile_id", profile.ID, "total_score", b.TotalScore)

	pid, uid, score := profile.ID, profile.UserID, b.TotalScore
	gs.publish(ctx, types.ScoreEvent{
		Type:       types.EventGigScoreUpdated,
		ProfileID:  &pid,
		UserID:     &uid,
		TotalScore: &score,
		At:         now,
	})
	return &b, nil
}

// PreviewForUser uses the user's earliest profile. Users without one get a
// zero-score stub instead of an error.
func (gs *gigScoreService) PreviewForUser(ctx context.Context, userID uuid.UUID) (*GigScorePreview, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	profile, err := gs.profileRepo.GetFirstByUserID(ctx, nil, userID)
	if err != nil {
		return nil, dberr.Map("gigscore.preview.profile", err)
	}
	if profile == nil {
		return &GigScorePreview{Message: noProfileMessage}, nil
	}
	signals, b, err := gs.calculate(ctx, profile)
	if err != nil {
		return nil, err
	}
	pid := profile.ID
	return &GigScorePreview{
		Breakdown:      b,
		ProfileID:      &pid,
		CommunityScore: signals.CommunityScore,
		VolunteerScore: signals.VolunteerScore,
		Signals:        &signals,
	}, nil
}

func (gs *gigScoreService) History(ctx context.Context, profileID uuid.UUID, limit int) ([]*types.ScoreSnapshot, error) {
	if _, err := gs.loadProfile(ctx, profileID); err != nil {
		return nil, err
	}
	snaps, err := gs.snapshotRepo.ListByProfile(ctx, nil, profileID, limit)
	if err != nil {
		return nil, dberr.Map("gigscore.history", err)
	}
	return snaps, nil
}

// RecomputeAll updates every profile, at most concurrency at a time. A failing
// profile is counted and logged; only context cancellation stops the batch.
func (gs *gigScoreService) RecomputeAll(ctx context.Context, concurrency int) (RecomputeSummary, error) {
	ids, err := gs.profileRepo.ListIDs(ctx, nil)
	if err != nil {
		return RecomputeSummary{}, dberr.Map("gigscore.recompute.list", err)
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	var updated, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := gs.Update(gctx, id); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				gs.metrics.IncRecompute("error")
				gs.log.Warn("recompute failed", "profile_id", id, "error", err)
				return nil
			}
			updated.Add(1)
			gs.metrics.IncRecompute("ok")
			return nil
		})
	}
	err = g.Wait()

	summary := RecomputeSummary{Profiles: len(ids), Updated: int(updated.Load()), Failed: int(failed.Load())}
	gs.log.Info("recompute finished", "profiles", summary.Profiles, "updated", summary.Updated, "failed", summary.Failed)
	return summary, err
}

func (gs *gigScoreService) loadProfile(ctx context.Context, profileID uuid.UUID) (*types.Profile, error) {
	profile, err := gs.profileRepo.GetByID(ctx, nil, profileID)
	if err != nil {
		return nil, dberr.Map("gigscore.profile", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (gs *gigScoreService) calculate(ctx context.Context, profile *types.Profile) (signals scoring.Signals, b scoring.Breakdown, err error) {
	ctx, span := tracer.Start(ctx, "GigScoreService.calculate")
	start := time.Now()
	defer func() {
		gs.metrics.ObserveScore("gigscore", time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("gigscore.total", b.TotalScore))
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("gigscore.profile_id", profile.ID.String()))

	reviews, err := gs.reviewRepo.StatsByWorker(ctx, nil, profile.UserID)
	if err != nil {
		return signals, b, dberr.Map("gigscore.reviews", err)
	}
	clients, err := gs.jobRepo.ClientStatsByProfile(ctx, nil, profile.ID)
	if err != nil {
		return signals, b, dberr.Map("gigscore.jobs", err)
	}
	communityScore, err := gs.community.Score(ctx, profile.UserID)
	if err != nil {
		return signals, b, err
	}
	volunteerScore, err := gs.volunteer.Score(ctx, profile.UserID)
	if err != nil {
		return signals, b, err
	}

	signals = scoring.Signals{
		ReviewCount:     reviews.Count,
		ReviewLikes:     reviews.Likes,
		AverageRating:   reviews.AverageRating,
		CompletedJobs:   clients.Total,
		ResponseMinutes: profile.ResponseMinutes(),
		DistinctClients: clients.DistinctClients,
		RepeatClients:   clients.RepeatClients,
		CommunityScore:  communityScore,
		VolunteerScore:  volunteerScore,
	}
	return signals, scoring.Aggregate(signals), nil
}

func (gs *gigScoreService) publish(ctx context.Context, evt types.ScoreEvent) {
	if gs.bus == nil {
		return
	}
	err := gs.bus.Publish(ctx, evt)
	gs.metrics.IncBusPublish(evt.Type, err)
	if err != nil {
		gs.log.Warn("score event publish failed", "event", evt.Type, "error", err)
	}
}
