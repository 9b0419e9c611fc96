package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirphl/linkbio/models"
	"github.com/amirphl/linkbio/repository"
	"github.com/amirphl/linkbio/utils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memPrefix = "lb:"

func newMiniClickStore(t *testing.T) (repository.ClickStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return repository.NewClickStoreRedis(rc, memPrefix), mr
}

func TestClickStoreRedis_AppendAndIncrement(t *testing.T) {
	store, mr := newMiniClickStore(t)
	ctx := context.Background()

	ev := click("alice", "abc", 1700000000123)
	require.NoError(t, store.AppendClick(ctx, ev))
	n, err := store.IncrementItemCounter(ctx, "alice", "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	logKey := repository.AnalyticsLogKey(memPrefix, "alice")
	assert.Equal(t, "lb:analytics:alice", logKey)
	members, err := mr.ZMembers(logKey)
	require.NoError(t, err)
	require.Len(t, members, 1)
	score, err := mr.ZScore(logKey, members[0])
	require.NoError(t, err)
	assert.Equal(t, float64(1700000000123), score)
	assert.Contains(t, members[0], `"itemId":"abc"`)
	assert.Contains(t, members[0], `"isGated":true`)

	counter, err := mr.Get(repository.ItemCounterKey(memPrefix, "alice", "abc"))
	require.NoError(t, err)
	assert.Equal(t, "1", counter)

	events, err := store.RangeClicks(ctx, "alice", models.ClickRange{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)
	assert.Equal(t, ev.Timestamp, events[0].Timestamp)
}

func TestClickStoreRedis_RangeClicks(t *testing.T) {
	store, _ := newMiniClickStore(t)
	ctx := context.Background()

	for _, ts := range []int64{300, 100, 400, 200, 200} {
		require.NoError(t, store.AppendClick(ctx, click("ranged", fmt.Sprintf("i%d", ts), ts)))
	}

	t.Run("OrderedByTimestamp", func(t *testing.T) {
		events, err := store.RangeClicks(ctx, "ranged", models.ClickRange{})
		require.NoError(t, err)
		require.Len(t, events, 5)
		for i := 1; i < len(events); i++ {
			assert.LessOrEqual(t, events[i-1].Timestamp, events[i].Timestamp)
		}
		assert.Equal(t, int64(100), events[0].Timestamp)
		assert.Equal(t, int64(400), events[4].Timestamp)
	})

	t.Run("BoundsAreInclusive", func(t *testing.T) {
		events, err := store.RangeClicks(ctx, "ranged", models.ClickRange{From: utils.ToPtr(int64(200)), To: utils.ToPtr(int64(300))})
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, int64(200), events[0].Timestamp)
		assert.Equal(t, int64(300), events[2].Timestamp)
	})

	t.Run("OpenEndedBounds", func(t *testing.T) {
		events, err := store.RangeClicks(ctx, "ranged", models.ClickRange{From: utils.ToPtr(int64(300))})
		require.NoError(t, err)
		assert.Len(t, events, 2)

		events, err = store.RangeClicks(ctx, "ranged", models.ClickRange{To: utils.ToPtr(int64(100))})
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("LimitKeepsOldest", func(t *testing.T) {
		events, err := store.RangeClicks(ctx, "ranged", models.ClickRange{Limit: 2})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, int64(100), events[0].Timestamp)
		assert.Equal(t, int64(200), events[1].Timestamp)
	})

	t.Run("UnknownSlugIsEmpty", func(t *testing.T) {
		events, err := store.RangeClicks(ctx, "nobody", models.ClickRange{})
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestClickStoreRedis_SkipsUndecodableEntries(t *testing.T) {
	store, mr := newMiniClickStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendClick(ctx, click("mixed", "abc", 10)))
	_, err := mr.ZAdd(repository.AnalyticsLogKey(memPrefix, "mixed"), 20, "{broken")
	require.NoError(t, err)

	events, err := store.RangeClicks(ctx, "mixed", models.ClickRange{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(10), events[0].Timestamp)
}

func TestClickStoreRedis_ConcurrentClicks(t *testing.T) {
	store, _ := newMiniClickStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// timestamps arrive out of order
			ts := int64(1000 - i)
			assert.NoError(t, store.AppendClick(ctx, click("busy", "btn", ts)))
			_, err := store.IncrementItemCounter(ctx, "busy", "btn")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	count, err := store.ItemCount(ctx, "busy", "btn")
	require.NoError(t, err)
	assert.Equal(t, int64(n), count)

	events, err := store.RangeClicks(ctx, "busy", models.ClickRange{})
	require.NoError(t, err)
	require.Len(t, events, n)
	assert.Equal(t, int64(1000-n+1), events[0].Timestamp)
	assert.Equal(t, int64(1000), events[n-1].Timestamp)
}

func TestClickStoreRedis_ItemCounts(t *testing.T) {
	store, mr := newMiniClickStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.IncrementItemCounter(ctx, "counts", "a")
		require.NoError(t, err)
	}

	n, err := store.ItemCount(ctx, "counts", "never")
	require.NoError(t, err)
	assert.Zero(t, n)

	counts, err := store.ItemCounts(ctx, "counts", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 3, "b": 0}, counts)

	counts, err = store.ItemCounts(ctx, "counts", nil)
	require.NoError(t, err)
	assert.Empty(t, counts)

	require.NoError(t, mr.Set(repository.ItemCounterKey(memPrefix, "counts", "bad"), "many"))
	_, err = store.ItemCounts(ctx, "counts", []string{"a", "bad"})
	assert.ErrorContains(t, err, "is not an integer")
	_, err = store.ItemCount(ctx, "counts", "bad")
	assert.Error(t, err)
}

func TestClickStoreRedis_StoreDown(t *testing.T) {
	store, mr := newMiniClickStore(t)
	ctx := context.Background()
	mr.Close()

	err := store.AppendClick(ctx, click("alice", "abc", 1))
	assert.ErrorContains(t, err, "failed to append click to analytics log")

	_, err = store.IncrementItemCounter(ctx, "alice", "abc")
	assert.ErrorContains(t, err, "failed to increment item counter")

	_, err = store.RangeClicks(ctx, "alice", models.ClickRange{})
	assert.ErrorContains(t, err, "failed to read analytics log")

	_, err = store.ItemCount(ctx, "alice", "abc")
	assert.ErrorContains(t, err, "failed to read item counter")

	_, err = store.ItemCounts(ctx, "alice", []string{"abc"})
	assert.ErrorContains(t, err, "failed to read item counters")

	assert.Error(t, store.Ping(ctx))
}
