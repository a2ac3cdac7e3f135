package repository_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peacelens/transcript-scorer/internal/repository"
)

func setupTestRepo(t *testing.T) (*repository.ScoreRepository, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewScoreRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	return repo, db
}

func ptr(v float64) *float64 { return &v }

func TestScoreRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupTestRepo(t)

	t.Run("EnsureSchema is idempotent", func(t *testing.T) {
		require.NoError(t, repo.EnsureSchema(ctx))
	})

	t.Run("SaveScores and GetScoresByVideo round trip", func(t *testing.T) {
		scores := map[string]*float64{
			"compassion_contempt": ptr(3.5),
			"nuance":              nil, // unavailable
		}
		require.NoError(t, repo.SaveScores(ctx, "vid-1", "llm_v1_openai", 1, scores))

		got, err := repo.GetScoresByVideo(ctx, "vid-1")
		require.NoError(t, err)

		require.Contains(t, got, "llm_v1_openai")
		byDim := got["llm_v1_openai"]
		require.NotNil(t, byDim["compassion_contempt"])
		assert.Equal(t, 3.5, *byDim["compassion_contempt"])

		val, present := byDim["nuance"]
		assert.True(t, present, "unavailable dimension must stay present")
		assert.Nil(t, val)
	})

	t.Run("SaveScores upserts on rerun of the same run number", func(t *testing.T) {
		require.NoError(t, repo.SaveScores(ctx, "vid-2", "roberta_plain", 1,
			map[string]*float64{"compassion_contempt": ptr(2.0)}))
		require.NoError(t, repo.SaveScores(ctx, "vid-2", "roberta_plain", 1,
			map[string]*float64{"compassion_contempt": ptr(4.0)}))

		got, err := repo.GetScoresByVideo(ctx, "vid-2")
		require.NoError(t, err)
		assert.Equal(t, 4.0, *got["roberta_plain"]["compassion_contempt"])
	})

	t.Run("GetScoresByVideo returns the latest run", func(t *testing.T) {
		require.NoError(t, repo.SaveScores(ctx, "vid-3", "roberta_valence", 1,
			map[string]*float64{"compassion_contempt": ptr(1.5)}))
		require.NoError(t, repo.SaveScores(ctx, "vid-3", "roberta_valence", 2,
			map[string]*float64{"compassion_contempt": ptr(2.5)}))

		got, err := repo.GetScoresByVideo(ctx, "vid-3")
		require.NoError(t, err)
		assert.Equal(t, 2.5, *got["roberta_valence"]["compassion_contempt"])
	})

	t.Run("unknown video yields empty pivot", func(t *testing.T) {
		got, err := repo.GetScoresByVideo(ctx, "vid-nope")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestScoreRepository_GoldStandard(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupTestRepo(t)

	t.Run("gold video upsert and listing", func(t *testing.T) {
		require.NoError(t, repo.UpsertGoldVideo(ctx, "vid-a", "first transcript"))
		require.NoError(t, repo.UpsertGoldVideo(ctx, "vid-b", "second transcript"))
		require.NoError(t, repo.UpsertGoldVideo(ctx, "vid-a", "revised transcript"))

		videos, err := repo.ListGoldVideos(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, "vid-a", videos[0].VideoID)
		assert.Equal(t, "revised transcript", videos[0].Transcript)
		assert.Equal(t, "vid-b", videos[1].VideoID)
	})

	t.Run("gold pairs join scores with human ratings", func(t *testing.T) {
		require.NoError(t, repo.UpsertGoldRating(ctx, "vid-a", "compassion_contempt", 4.0))
		require.NoError(t, repo.UpsertGoldRating(ctx, "vid-b", "compassion_contempt", 2.0))

		require.NoError(t, repo.SaveScores(ctx, "vid-a", "roberta_plain", 1,
			map[string]*float64{"compassion_contempt": ptr(3.8)}))
		require.NoError(t, repo.SaveScores(ctx, "vid-b", "roberta_plain", 1,
			map[string]*float64{"compassion_contempt": nil}))

		pairs, err := repo.GetMethodGoldPairs(ctx, 1)
		require.NoError(t, err)
		require.Len(t, pairs, 2)

		assert.Equal(t, "roberta_plain", pairs[0].Method)
		assert.Equal(t, "vid-a", pairs[0].VideoID)
		assert.True(t, pairs[0].ModelScore.Valid)
		assert.Equal(t, 3.8, pairs[0].ModelScore.Float64)
		assert.Equal(t, 4.0, pairs[0].HumanScore)

		assert.Equal(t, "vid-b", pairs[1].VideoID)
		assert.False(t, pairs[1].ModelScore.Valid)
		assert.Equal(t, 2.0, pairs[1].HumanScore)
	})

	t.Run("pairs are scoped to a run number", func(t *testing.T) {
		pairs, err := repo.GetMethodGoldPairs(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})

	t.Run("scores without a matching rating are excluded", func(t *testing.T) {
		require.NoError(t, repo.SaveScores(ctx, "vid-unrated", "roberta_plain", 1,
			map[string]*float64{"compassion_contempt": ptr(3.0)}))

		pairs, err := repo.GetMethodGoldPairs(ctx, 1)
		require.NoError(t, err)
		for _, p := range pairs {
			assert.NotEqual(t, "vid-unrated", p.VideoID)
		}
	})
}
