package provider

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
)

func TestProfileRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewProfileRepo(db, testutil.Logger(t))
	ctx := context.Background()
	now := time.Now().UTC()

	owner := testutil.User(t, db, types.RoleWorker)
	second := testutil.Profile(t, db, owner.ID, now)
	first := testutil.Profile(t, db, owner.ID, now.Add(-48*time.Hour))
	testutil.Profile(t, db, uuid.New(), now)

	got, err := repo.GetByID(ctx, nil, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, types.DefaultResponseMinutes, got.ResponseMinutes())

	missing, err := repo.GetByID(ctx, nil, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	ids, err := repo.ListIDsByUserID(ctx, nil, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, ids)

	earliest, err := repo.GetFirstByUserID(ctx, nil, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, earliest)
	assert.Equal(t, first.ID, earliest.ID)

	nobody, err := repo.GetFirstByUserID(ctx, nil, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, nobody)

	all, err := repo.ListIDs(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.UpdateScore(ctx, nil, first.ID, "73", now))
	reloaded, err := repo.GetByID(ctx, nil, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "73", reloaded.TotalScore)

	err = repo.UpdateScore(ctx, nil, uuid.New(), "1", now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReviewRepoStatsByWorker(t *testing.T) {
	db := testutil.DB(t)
	repo := NewReviewRepo(db, testutil.Logger(t))
	ctx := context.Background()
	worker := uuid.New()

	empty, err := repo.StatsByWorker(ctx, nil, worker)
	require.NoError(t, err)
	assert.Equal(t, ReviewStats{}, empty)

	_, err = repo.Create(ctx, nil, []*types.Review{
		{WorkerID: worker, ClientID: uuid.New(), Rating: testutil.IntPtr(5)},
		{WorkerID: worker, ClientID: uuid.New(), Rating: testutil.IntPtr(3)},
		{WorkerID: worker, ClientID: uuid.New()},
		{WorkerID: uuid.New(), ClientID: uuid.New(), Rating: testutil.IntPtr(1)},
	})
	require.NoError(t, err)

	stats, err := repo.StatsByWorker(ctx, nil, worker)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Count)
	assert.InDelta(t, 13.0/3, stats.AverageRating, 1e-9)
	assert.Equal(t, int64(2), stats.Likes)
}

func TestJobRepoClientStats(t *testing.T) {
	db := testutil.DB(t)
	repo := NewJobRepo(db, testutil.Logger(t))
	ctx := context.Background()
	profileID := uuid.New()
	loyal, once, other := uuid.New(), uuid.New(), uuid.New()

	empty, err := repo.ClientStatsByProfile(ctx, nil, profileID)
	require.NoError(t, err)
	assert.Equal(t, ClientStats{}, empty)

	_, err = repo.Create(ctx, nil, []*types.Job{
		{ProfileID: profileID, ClientID: loyal, Status: types.JobStatusCompleted},
		{ProfileID: profileID, ClientID: loyal, Status: types.JobStatusCompleted},
		{ProfileID: profileID, ClientID: loyal, Status: types.JobStatusRequested},
		{ProfileID: profileID, ClientID: once, Status: types.JobStatusCompleted},
		{ProfileID: uuid.New(), ClientID: other, Status: types.JobStatusCompleted},
	})
	require.NoError(t, err)

	stats, err := repo.ClientStatsByProfile(ctx, nil, profileID)
	require.NoError(t, err)
	assert.Equal(t, ClientStats{Total: 4, DistinctClients: 2, RepeatClients: 1}, stats)
}
