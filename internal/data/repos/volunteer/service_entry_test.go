package volunteer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/gigifypro-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
)

func TestVolunteerEntryRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewVolunteerEntryRepo(db, testutil.Logger(t))
	ctx := context.Background()
	now := time.Now().UTC()

	u := testutil.User(t, db, types.RoleWorker)
	p1 := testutil.Profile(t, db, u.ID, now)
	p2 := testutil.Profile(t, db, u.ID, now)
	other := testutil.Profile(t, db, uuid.New(), now)

	created, err := repo.Create(ctx, nil, []*types.VolunteerServiceEntry{
		{ProfileID: p1.ID, Title: "food bank", Hours: decimal.RequireFromString("2.5"), Status: types.VolunteerStatusPending},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	testutil.VolunteerEntry(t, db, p2.ID, "3", testutil.IntPtr(4), types.VolunteerStatusApproved, now)
	testutil.VolunteerEntry(t, db, p2.ID, "1", nil, types.VolunteerStatusRejected, now)
	testutil.VolunteerEntry(t, db, other.ID, "9", nil, types.VolunteerStatusApproved, now)

	got, err := repo.GetByID(ctx, nil, created[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Hours.Equal(decimal.RequireFromString("2.5")))

	missing, err := repo.GetByID(ctx, nil, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	counted, err := repo.ListByProfileIDs(ctx, nil, []uuid.UUID{p1.ID, p2.ID}, []string{types.VolunteerStatusApproved, types.VolunteerStatusCompleted})
	require.NoError(t, err)
	require.Len(t, counted, 1)
	assert.Equal(t, p2.ID, counted[0].ProfileID)

	all, err := repo.ListByProfileIDs(ctx, nil, []uuid.UUID{p1.ID, p2.ID}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.ListByProfileIDs(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	completedAt := now.Add(-time.Hour)
	moderator := uuid.New()
	got.Status = types.VolunteerStatusCompleted
	got.Rating = testutil.IntPtr(5)
	got.VerifiedBy = &moderator
	got.CompletedAt = &completedAt
	require.NoError(t, repo.Update(ctx, nil, got))

	reloaded, err := repo.GetByID(ctx, nil, got.ID)
	require.NoError(t, err)
	assert.Equal(t, types.VolunteerStatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.Rating)
	assert.Equal(t, 5, *reloaded.Rating)
	require.NotNil(t, reloaded.VerifiedBy)
	assert.Equal(t, moderator, *reloaded.VerifiedBy)
	require.NotNil(t, reloaded.CompletedAt)
	assert.WithinDuration(t, completedAt, *reloaded.CompletedAt, time.Second)
}
