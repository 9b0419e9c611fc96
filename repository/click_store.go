package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/amirphl/linkbio/models"
	"github.com/redis/go-redis/v9"
)

// ClickStoreRedis keeps the analytics log in a sorted set per slug (score = timestamp ms)
// and item counters as plain integer keys.
type ClickStoreRedis struct {
	rc     *redis.Client
	prefix string
}

func NewClickStoreRedis(rc *redis.Client, prefix string) ClickStore {
	return &ClickStoreRedis{rc: rc, prefix: prefix}
}

// AnalyticsLogKey is the sorted set holding every click of a page
func AnalyticsLogKey(prefix, slug string) string {
	return prefix + "analytics:" + slug
}

// ItemCounterKey is the running click counter of one page item
func ItemCounterKey(prefix, slug, itemID string) string {
	return prefix + "clicks:" + slug + ":" + itemID
}

func (s *ClickStoreRedis) AppendClick(ctx context.Context, event *models.ClickEvent) error {
	member, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode click event: %w", err)
	}
	err = s.rc.ZAdd(ctx, AnalyticsLogKey(s.prefix, event.Slug), redis.Z{
		Score:  float64(event.Timestamp),
		Member: string(member),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append click to analytics log: %w", err)
	}
	return nil
}

func (s *ClickStoreRedis) IncrementItemCounter(ctx context.Context, slug, itemID string) (int64, error) {
	n, err := s.rc.Incr(ctx, ItemCounterKey(s.prefix, slug, itemID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment item counter: %w", err)
	}
	return n, nil
}

// RangeClicks returns clicks of a page ordered by timestamp, oldest first
func (s *ClickStoreRedis) RangeClicks(ctx context.Context, slug string, r models.ClickRange) ([]*models.ClickEvent, error) {
	by := &redis.ZRangeBy{Min: "-inf", Max: "+inf"}
	if r.From != nil {
		by.Min = strconv.FormatInt(*r.From, 10)
	}
	if r.To != nil {
		by.Max = strconv.FormatInt(*r.To, 10)
	}
	if r.Limit > 0 {
		by.Offset = 0
		by.Count = int64(r.Limit)
	}

	members, err := s.rc.ZRangeByScore(ctx, AnalyticsLogKey(s.prefix, slug), by).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read analytics log: %w", err)
	}

	events := make([]*models.ClickEvent, 0, len(members))
	for _, m := range members {
		var ev models.ClickEvent
		if err := json.Unmarshal([]byte(m), &ev); err != nil {
			log.Printf("Skipping undecodable analytics entry for slug %s: %v", slug, err)
			continue
		}
		events = append(events, &ev)
	}
	return events, nil
}

func (s *ClickStoreRedis) ItemCount(ctx context.Context, slug, itemID string) (int64, error) {
	n, err := s.rc.Get(ctx, ItemCounterKey(s.prefix, slug, itemID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read item counter: %w", err)
	}
	return n, nil
}

// ItemCounts reads several counters of one page in a single round trip. Missing counters are 0.
func (s *ClickStoreRedis) ItemCounts(ctx context.Context, slug string, itemIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(itemIDs))
	if len(itemIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		keys[i] = ItemCounterKey(s.prefix, slug, id)
	}

	values, err := s.rc.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read item counters: %w", err)
	}

	for i, v := range values {
		counts[itemIDs[i]] = 0
		str, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item counter %s is not an integer: %w", keys[i], err)
		}
		counts[itemIDs[i]] = n
	}
	return counts, nil
}

func (s *ClickStoreRedis) Ping(ctx context.Context) error {
	return s.rc.Ping(ctx).Err()
}
