package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/gigifypro-backend/internal/data/repos/testutil"
	types "github.com/yungbote/gigifypro-backend/internal/domain"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.User{
		{Email: "giger@example.com", FirstName: "A", LastName: "B", Role: types.RoleWorker},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.NotEqual(t, uuid.Nil, created[0].ID)

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.RoleWorker, got[0].Role)

	one, err := repo.GetByID(ctx, tx, created[0].ID)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.True(t, one.IsWorker())

	missing, err := repo.GetByID(ctx, tx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	empty, err := repo.Create(ctx, tx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
