package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	_, err := a.SaveScore(ScoreEntry{GameID: "tetris", Score: 40})
	require.NoError(t, err)

	high, err := b.HighScore("tetris")
	require.NoError(t, err)
	assert.Zero(t, high, "each in-memory store starts empty")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	run := uuid.New()
	saved, err := store.SaveScore(ScoreEntry{RunID: run, GameID: "tetris", Score: 100, Lines: 10})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, run, saved.RunID)
	assert.True(t, saved.CreatedAt.Equal(fixed))

	for _, score := range []int{50, 200} {
		_, err := store.SaveScore(ScoreEntry{GameID: "tetris", Score: score})
		require.NoError(t, err)
	}
	_, err = store.SaveScore(ScoreEntry{GameID: "other", Score: 500})
	require.NoError(t, err)

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.Equal(t, run, scores[1].RunID)
	assert.Equal(t, 10, scores[1].Lines)
	assert.True(t, scores[1].CreatedAt.Equal(fixed))
	assert.NotEqual(t, uuid.Nil, scores[0].RunID, "missing run ids are generated")
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveScore(ScoreEntry{GameID: "tetris", Score: 30})
	require.NoError(t, err)
	for i := range 5 {
		_, err := store.SaveScore(ScoreEntry{GameID: "tetris", Score: i * 10})
		require.NoError(t, err)
	}

	scores, err := store.TopScores("tetris", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 40, scores[0].Score)
	assert.Equal(t, 30, scores[1].Score)
	assert.Equal(t, first.ID, scores[1].ID, "earlier entry wins a tie")
	assert.Equal(t, 30, scores[2].Score)

	all, err := store.TopScores("tetris", 0)
	require.NoError(t, err)
	assert.Len(t, all, 6, "non-positive limit falls back to 10")
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	run := uuid.New()

	_, err := store.SaveScore(ScoreEntry{RunID: run, GameID: "tetris", Score: 10})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{RunID: run, GameID: "tetris", Score: 20})
	assert.ErrorContains(t, err, "cannot save score")
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	require.NoError(t, err)
	assert.Zero(t, high)

	for _, score := range []int{20, 70, 40} {
		_, err := store.SaveScore(ScoreEntry{GameID: "tetris", Score: score})
		require.NoError(t, err)
	}

	high, err = store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 70, high)

	require.NoError(t, store.ClearScores("tetris"))
	high, err = store.HighScore("tetris")
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tetris")
	require.NoError(t, err)
	assert.Zero(t, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, e := range []ScoreEntry{{Score: 10, Lines: 1}, {Score: 30, Lines: 3}} {
		store.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		e.GameID = "tetris"
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}

	stats, err = store.GetGameStats("tetris")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 30, stats.HighScore)
	assert.InDelta(t, 20.0, stats.AvgScore, 1e-9)
	assert.Equal(t, 4, stats.TotalLines)
	assert.True(t, stats.LastPlayed.Equal(base.Add(time.Minute)))
}

func TestStoreBenchmarks(t *testing.T) {
	store := openTestStore(t)

	for i, winner := range []string{"bubble", "insertion", "insertion"} {
		_, err := store.SaveBenchmark(BenchmarkEntry{
			Length:    10 * (i + 1),
			Bubble:    time.Duration(i+2) * time.Microsecond,
			Insertion: time.Duration(i+1) * time.Microsecond,
			Winner:    winner,
		})
		require.NoError(t, err)
	}

	recent, err := store.RecentBenchmarks(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 30, recent[0].Length, "newest first")
	assert.Equal(t, 4*time.Microsecond, recent[0].Bubble)
	assert.Equal(t, 3*time.Microsecond, recent[0].Insertion)
	assert.Equal(t, "insertion", recent[0].Winner)
	assert.Equal(t, 20, recent[1].Length)
}

func TestStoreGuessRecord(t *testing.T) {
	store := openTestStore(t)

	played, won, err := store.GuessRecord()
	require.NoError(t, err)
	assert.Zero(t, played)
	assert.Zero(t, won)

	for _, correct := range []bool{true, false, true} {
		_, err := store.SaveGuess(GuessEntry{Correct: correct, Attempts: 2})
		require.NoError(t, err)
	}

	played, won, err = store.GuessRecord()
	require.NoError(t, err)
	assert.Equal(t, 3, played)
	assert.Equal(t, 2, won)
}
