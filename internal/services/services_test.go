package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/data/repos"
	"github.com/yungbote/gigifypro-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/observability"
)

type recordingBus struct {
	mu     sync.Mutex
	events []types.ScoreEvent
}

func (b *recordingBus) Publish(_ context.Context, evt types.ScoreEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Events() []types.ScoreEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]types.ScoreEvent(nil), b.events...)
}

type testEnv struct {
	db      *gorm.DB
	bus     *recordingBus
	now     time.Time
	metrics *observability.Metrics

	profiles repos.ProfileRepo
	reviews  repos.ReviewRepo
	jobs     repos.JobRepo
	stats    repos.CommunityStatsRepo
	entries  repos.VolunteerEntryRepo
	badges   repos.BadgeRepo
	training repos.TrainingProgressRepo

	community CommunityService
	volunteer VolunteerService
	gigscore  GigScoreService
	badge     BadgeService
	trainer   TrainingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	env := &testEnv{
		db:       db,
		bus:      &recordingBus{},
		now:      time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC),
		metrics:  observability.NewMetrics(),
		profiles: repos.NewProfileRepo(db, log),
		reviews:  repos.NewReviewRepo(db, log),
		jobs:     repos.NewJobRepo(db, log),
		stats:    repos.NewCommunityStatsRepo(db, log),
		entries:  repos.NewVolunteerEntryRepo(db, log),
		badges:   repos.NewBadgeRepo(db, log),
		training: repos.NewTrainingProgressRepo(db, log),
	}
	clock := func() time.Time { return env.now }

	env.community = NewCommunityService(db, log, env.metrics, env.stats)

	vs := NewVolunteerService(db, log, env.metrics, env.profiles, env.entries).(*volunteerService)
	vs.now = clock
	env.volunteer = vs

	gs := NewGigScoreService(db, log, env.metrics, env.bus, env.profiles, env.reviews, env.jobs,
		repos.NewScoreSnapshotRepo(db, log), env.community, env.volunteer).(*gigScoreService)
	gs.now = clock
	env.gigscore = gs

	bs := NewBadgeService(db, log, env.metrics, env.bus, repos.NewUserRepo(db, log), env.badges, env.training).(*badgeService)
	bs.now = clock
	env.badge = bs

	ts := NewTrainingService(db, log, env.training, env.badge).(*trainingService)
	ts.now = clock
	env.trainer = ts
	return env
}
