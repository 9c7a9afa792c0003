package community

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/gigifypro-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
)

func TestCommunityStatsRepoIncrement(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCommunityStatsRepo(db, testutil.Logger(t))
	ctx := context.Background()
	userID := uuid.New()

	missing, err := repo.GetByUserID(ctx, nil, userID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	first, err := repo.Increment(ctx, nil, userID, types.CommunityDelta{Posts: 2, HelpfulReacts: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Posts)
	assert.Equal(t, int64(1), first.HelpfulReacts)

	second, err := repo.Increment(ctx, nil, userID, types.CommunityDelta{Posts: 1, Comments: 4, AcceptedAnswers: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), second.Posts)
	assert.Equal(t, int64(4), second.Comments)
	assert.Equal(t, int64(1), second.HelpfulReacts)
	assert.Equal(t, int64(1), second.AcceptedAnswers)
}

func TestCommunityStatsRepoConcurrentIncrements(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCommunityStatsRepo(db, testutil.Logger(t))
	ctx := context.Background()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Increment(ctx, nil, userID, types.CommunityDelta{Comments: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByUserID(ctx, nil, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(20), got.Comments)
}
