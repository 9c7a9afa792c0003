package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
)

func TestCommunityServiceIncrementAndScore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	score, err := env.community.Score(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, score)

	stats, err := env.community.IncrementStats(ctx, userID, types.CommunityDelta{HelpfulReacts: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.HelpfulReacts)

	stats, err = env.community.IncrementStats(ctx, userID, types.CommunityDelta{HelpfulReacts: 10, Posts: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(20), stats.HelpfulReacts)
	assert.Equal(t, int64(1), stats.Posts)

	score, err = env.community.Score(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestCommunityServiceRejectsNegativeDeltas(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.community.IncrementStats(context.Background(), uuid.New(), types.CommunityDelta{Posts: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCommunityServiceZeroDeltaReturnsCurrentRow(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()

	stats, err := env.community.IncrementStats(context.Background(), userID, types.CommunityDelta{})
	require.NoError(t, err)
	assert.Equal(t, userID, stats.UserID)
	assert.Zero(t, stats.Posts)
}
