package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fintrack/finance-tracker/internal/api/metrics"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

const summaryTTL = 5 * time.Minute

// SummaryCache stores computed month summaries per user.
// Key format: summary:<user_id>:<year>-<month>
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary for the user's month, or (nil, nil) on a miss.
func (c *SummaryCache) Get(ctx context.Context, userID string, year, month int) (*ports.SummaryResult, error) {
	raw, err := c.client.Get(ctx, c.key(userID, year, month)).Bytes()
	if err == redis.Nil {
		metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("summary cache get: %w", err)
	}

	var summary ports.SummaryResult
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("summary cache decode: %w", err)
	}
	metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
	return &summary, nil
}

// Set stores a summary under its user and month (expires after summaryTTL).
func (c *SummaryCache) Set(ctx context.Context, userID string, summary *ports.SummaryResult) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID, summary.Year, summary.Month), raw, summaryTTL).Err()
}

// Invalidate drops every cached summary for the user after a write.
func (c *SummaryCache) Invalidate(ctx context.Context, userID string) error {
	iter := c.client.Scan(ctx, 0, fmt.Sprintf("summary:%s:*", userID), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("summary cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *SummaryCache) key(userID string, year, month int) string {
	return fmt.Sprintf("summary:%s:%d-%02d", userID, year, month)
}
