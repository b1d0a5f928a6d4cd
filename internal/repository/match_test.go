package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/testing/suite"
)

func finishedMatch(id string) *entity.Match {
	match := entity.NewMatch(id)
	match.Game.Board = [entity.BoardSize]entity.Mark{
		entity.PlayerX, entity.PlayerX, entity.PlayerX,
		entity.PlayerO, entity.PlayerO, entity.EmptyCell,
		entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
	}
	match.Game.Status = entity.StatusWon
	match.Game.Winner = entity.PlayerX
	match.Game.WinningLine = []int{0, 1, 2}
	match.Scores = entity.Scoreboard{X: 3, O: 1, Draws: 2}

	return match
}

func testMatchRepository(ctx context.Context, t *testing.T, newRepo func() MatchRepository) {
	t.Run("CreateOrUpdate_And_GetByID", func(t *testing.T) {
		matchRepo := newRepo()

		// Given: a finished match with scores
		match := finishedMatch("123")

		// When: the match is saved and loaded back
		err := matchRepo.CreateOrUpdate(ctx, match)
		require.NoError(t, err)

		retrieved, err := matchRepo.GetByID(ctx, match.ID)

		// Then: the loaded match equals the saved one
		require.NoError(t, err)
		assert.Equal(t, match.ID, retrieved.ID)
		assert.Equal(t, match.Game, retrieved.Game)
		assert.Equal(t, match.Scores, retrieved.Scores)
		assert.True(t, match.UpdatedAt.Equal(retrieved.UpdatedAt))
	})

	t.Run("CreateOrUpdate_Overwrites", func(t *testing.T) {
		matchRepo := newRepo()

		match := entity.NewMatch("456")
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		match.Scores.RecordDraw()
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		retrieved, err := matchRepo.GetByID(ctx, "456")
		require.NoError(t, err)
		assert.Equal(t, entity.Scoreboard{Draws: 1}, retrieved.Scores)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		matchRepo := newRepo()

		// When: GetByID is called with a non-existent ID
		retrieved, err := matchRepo.GetByID(ctx, "9999999")

		// Then: ErrMatchNotFound is returned
		require.ErrorIs(t, err, ErrMatchNotFound)
		assert.Nil(t, retrieved)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		matchRepo := newRepo()

		match := entity.NewMatch("789")
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		// When: the match is deleted
		err := matchRepo.DeleteByID(ctx, match.ID)

		// Then: it can no longer be loaded or deleted
		require.NoError(t, err)

		_, err = matchRepo.GetByID(ctx, match.ID)
		require.ErrorIs(t, err, ErrMatchNotFound)

		err = matchRepo.DeleteByID(ctx, match.ID)
		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func testVisitRepository(ctx context.Context, t *testing.T, visitRepo VisitRepository) {
	// Given: a fresh counter
	total, err := visitRepo.Get(ctx)
	require.NoError(t, err)
	require.Zero(t, total)

	// When: the counter is hit three times
	for want := int64(0); want < 3; want++ {
		before, hitErr := visitRepo.Hit(ctx)

		// Then: each hit reports the count before it
		require.NoError(t, hitErr)
		assert.Equal(t, want, before)
	}

	total, err = visitRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestRedisMatchRepository(t *testing.T) {
	ctx, st := suite.New(t)

	testMatchRepository(ctx, t, func() MatchRepository {
		return NewMatchRepository(st.Storage, time.Hour)
	})

	t.Run("Keys expire", func(t *testing.T) {
		matchRepo := NewMatchRepository(st.Storage, time.Minute)
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, entity.NewMatch("ttl")))

		ttl, err := st.Storage.TTL(ctx, matchKey("ttl")).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})
}

func TestRedisVisitRepository(t *testing.T) {
	ctx, st := suite.New(t)

	testVisitRepository(ctx, t, NewVisitRepository(st.Storage))
}

func TestMemoryMatchRepository(t *testing.T) {
	testMatchRepository(context.Background(), t, NewMemoryMatchRepository)

	t.Run("Stored matches are detached from the caller", func(t *testing.T) {
		ctx := context.Background()
		matchRepo := NewMemoryMatchRepository()

		match := finishedMatch("copy")
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		match.Game.WinningLine[0] = 8
		match.Scores.X = 100

		retrieved, err := matchRepo.GetByID(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, retrieved.Game.WinningLine)
		assert.Equal(t, 3, retrieved.Scores.X)
	})
}

func TestMemoryVisitRepository(t *testing.T) {
	testVisitRepository(context.Background(), t, NewMemoryVisitRepository())
}
