package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/amirphl/linkbio/models"
	"github.com/amirphl/linkbio/repository"
	testingutil "github.com/amirphl/linkbio/testing"
	"github.com/amirphl/linkbio/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClickStore(t *testing.T) (repository.ClickStore, *testingutil.TestRedis) {
	t.Helper()
	tr, err := testingutil.SetupTestRedis()
	if errors.Is(err, testingutil.ErrTestRedisUnavailable) {
		t.Skipf("skipping: %v", err)
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Teardown() })
	return repository.NewClickStoreRedis(tr.Client, tr.Prefix), tr
}

func click(slug, item string, ts int64) *models.ClickEvent {
	return &models.ClickEvent{ID: uuid.NewString(), Slug: slug, ItemID: item, IsGated: true, Timestamp: ts}
}

func TestClickStoreRedis(t *testing.T) {
	store, tr := setupClickStore(t)
	ctx := context.Background()

	t.Run("AppendClickUsesTimestampAsScore", func(t *testing.T) {
		ev := click("alice", "abc", 1700000000123)
		require.NoError(t, store.AppendClick(ctx, ev))

		zs, err := tr.Client.ZRangeWithScores(ctx, repository.AnalyticsLogKey(tr.Prefix, "alice"), 0, -1).Result()
		require.NoError(t, err)
		require.Len(t, zs, 1)
		assert.Equal(t, float64(1700000000123), zs[0].Score)
		assert.Contains(t, zs[0].Member, `"itemId":"abc"`)
	})

	t.Run("IdenticalClicksAreDistinctMembers", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, store.AppendClick(ctx, click("twins", "abc", 42)))
		}
		n, err := tr.Client.ZCard(ctx, repository.AnalyticsLogKey(tr.Prefix, "twins")).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("RangeClicksIsInclusiveAndOrdered", func(t *testing.T) {
		for _, ts := range []int64{300, 100, 200, 400} {
			require.NoError(t, store.AppendClick(ctx, click("ranged", fmt.Sprintf("i%d", ts), ts)))
		}
		events, err := store.RangeClicks(ctx, "ranged", models.ClickRange{From: utils.ToPtr(int64(200)), To: utils.ToPtr(int64(300))})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, int64(200), events[0].Timestamp)
		assert.Equal(t, int64(300), events[1].Timestamp)

		events, err = store.RangeClicks(ctx, "ranged", models.ClickRange{Limit: 3})
		require.NoError(t, err)
		assert.Len(t, events, 3)
		assert.Equal(t, int64(100), events[0].Timestamp)

		events, err = store.RangeClicks(ctx, "nobody", models.ClickRange{})
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("ItemCounterConcurrentIncrements", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.IncrementItemCounter(ctx, "busy", "btn")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		n, err := store.ItemCount(ctx, "busy", "btn")
		require.NoError(t, err)
		assert.Equal(t, int64(100), n)
	})

	t.Run("ItemCountsMissingIsZero", func(t *testing.T) {
		_, err := store.IncrementItemCounter(ctx, "counts", "a")
		require.NoError(t, err)
		_, err = store.IncrementItemCounter(ctx, "counts", "a")
		require.NoError(t, err)

		counts, err := store.ItemCounts(ctx, "counts", []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"a": 2, "b": 0}, counts)

		n, err := store.ItemCount(ctx, "counts", "never")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
