package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

func historyRepos(t *testing.T, maxSize int) map[string]repository.HistoryRepository {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]repository.HistoryRepository{
		"memory": NewMemoryHistoryRepository(maxSize),
		"sqlite": NewSQLiteHistoryRepository(db, maxSize),
	}
}

func exchange(id, user, q, a string, ts time.Time) entity.Exchange {
	return entity.Exchange{ID: id, UserID: user, Question: q, Answer: a, Timestamp: ts}
}

func TestHistoryRepository_AppendAndList(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for name, repo := range historyRepos(t, 10) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Append(ctx, exchange("1", "alice", "q1", "a1", base)))
			require.NoError(t, repo.Append(ctx, exchange("2", "bob", "qb", "ab", base)))
			require.NoError(t, repo.Append(ctx, exchange("3", "alice", "q2", "a2", base.Add(time.Minute))))

			list, err := repo.List(ctx, "alice")
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "q1", list[0].Question)
			assert.Equal(t, "a2", list[1].Answer)
			assert.True(t, list[1].Timestamp.Equal(base.Add(time.Minute)))

			empty, err := repo.List(ctx, "nobody")
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestHistoryRepository_TimestampsNonDecreasing(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for name, repo := range historyRepos(t, 10) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Append(ctx, exchange("1", "u", "q1", "a1", base)))
			require.NoError(t, repo.Append(ctx, exchange("2", "u", "q2", "a2", base.Add(-time.Hour))))

			list, err := repo.List(ctx, "u")
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.False(t, list[1].Timestamp.Before(list[0].Timestamp))
			assert.Equal(t, "q2", list[1].Question)
		})
	}
}

func TestHistoryRepository_TrimsOldest(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for name, repo := range historyRepos(t, 3) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i, q := range []string{"q1", "q2", "q3", "q4", "q5"} {
				id := name + q
				require.NoError(t, repo.Append(ctx, exchange(id, "u", q, "a", base.Add(time.Duration(i)*time.Second))))
			}

			list, err := repo.List(ctx, "u")
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.Equal(t, "q3", list[0].Question)
			assert.Equal(t, "q5", list[2].Question)
		})
	}
}

func TestHistoryRepository_Clear(t *testing.T) {
	for name, repo := range historyRepos(t, 10) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Append(ctx, exchange("1", "u", "q", "a", time.Now())))
			require.NoError(t, repo.Append(ctx, exchange("2", "v", "q", "a", time.Now())))
			require.NoError(t, repo.Clear(ctx, "u"))

			list, err := repo.List(ctx, "u")
			require.NoError(t, err)
			assert.Empty(t, list)

			other, err := repo.List(ctx, "v")
			require.NoError(t, err)
			assert.Len(t, other, 1)
		})
	}
}

func TestProfileRepository_SaveAndGet(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "profile.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos := map[string]repository.ProfileRepository{
		"memory": NewMemoryProfileRepository(),
		"sqlite": NewSQLiteProfileRepository(db),
	}
	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := repo.Get(ctx, "u")
			assert.ErrorIs(t, err, repository.ErrProfileNotFound)

			require.NoError(t, repo.Save(ctx, entity.AssistantProfile{UserID: "u", AssistantName: "Jarvis", OwnerName: "Tony"}))
			require.NoError(t, repo.Save(ctx, entity.AssistantProfile{UserID: "u", AssistantName: "Friday", OwnerName: "Tony"}))

			p, err := repo.Get(ctx, "u")
			require.NoError(t, err)
			assert.Equal(t, "Friday", p.AssistantName)
			assert.Equal(t, "Tony", p.OwnerName)
			assert.False(t, p.UpdatedAt.IsZero())
		})
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}
