package badges

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/gigifypro-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
)

func seedCatalog(t *testing.T, repo BadgeRepo) {
	t.Helper()
	require.NoError(t, repo.UpsertCatalog(context.Background(), nil, []types.Badge{
		{Type: types.BadgeSafetyVerified, Name: "Safety Verified"},
		{Type: types.BadgeBusinessReady, Name: "Business Ready"},
		{Type: types.BadgeVerifiedIdentity, Name: "Verified Identity"},
	}))
}

func TestBadgeRepoCatalogUpsert(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBadgeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	seedCatalog(t, repo)
	before, err := repo.GetByTypes(ctx, nil, []types.BadgeType{types.BadgeSafetyVerified})
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, repo.UpsertCatalog(ctx, nil, []types.Badge{
		{Type: types.BadgeSafetyVerified, Name: "Safety First", Category: "training"},
	}))
	after, err := repo.GetByTypes(ctx, nil, []types.BadgeType{types.BadgeSafetyVerified})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, "Safety First", after[0].Name)

	var count int64
	require.NoError(t, db.Model(&types.Badge{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestBadgeRepoAwardIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBadgeRepo(db, testutil.Logger(t))
	ctx := context.Background()
	seedCatalog(t, repo)

	catalog, err := repo.GetByTypes(ctx, nil, []types.BadgeType{types.BadgeVerifiedIdentity})
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	userID := uuid.New()

	inserted, err := repo.Award(ctx, nil, userID, catalog[0].ID, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Award(ctx, nil, userID, catalog[0].ID, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, inserted)

	held, err := repo.ListHeldTypes(ctx, nil, userID)
	require.NoError(t, err)
	assert.Equal(t, []types.BadgeType{types.BadgeVerifiedIdentity}, held)

	awards, err := repo.ListAwardsByUser(ctx, nil, userID)
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.Equal(t, "Verified Identity", awards[0].Badge.Name)
}

func TestTrainingProgressRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewTrainingProgressRepo(db, testutil.Logger(t))
	ctx := context.Background()
	userID := uuid.New()

	count, err := repo.CountCompleted(ctx, nil, userID)
	require.NoError(t, err)
	assert.Zero(t, count)

	first := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.MarkCompleted(ctx, nil, userID, "safety-101", first))
	require.NoError(t, repo.MarkCompleted(ctx, nil, userID, "safety-101", time.Now().UTC()))
	require.NoError(t, repo.MarkCompleted(ctx, nil, userID, "ladders", time.Now().UTC()))
	require.NoError(t, db.Create(&types.TrainingProgress{UserID: userID, ArticleID: "draft", Completed: false}).Error)

	count, err = repo.CountCompleted(ctx, nil, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var row types.TrainingProgress
	require.NoError(t, db.Where("user_id = ? AND article_id = ?", userID, "safety-101").First(&row).Error)
	require.NotNil(t, row.CompletedAt)
	assert.WithinDuration(t, first, *row.CompletedAt, time.Second)
}
