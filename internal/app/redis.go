package app

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"ridelite/internal/config"
)

// NewRedisClient connects the shared persistence backend. The connection is
// verified up front so a bad REDIS_ADDR fails at startup, not on the first
// request. When New Relic is active, every command is reported as a
// datastore segment.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, nrApp *newrelic.Application) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if nrApp != nil {
		client.AddHook(&kvSegmentHook{})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// kvSegmentHook reports store and replay-guard commands to the transaction
// that issued them. Commands outside a transaction (startup ping) are not
// reported.
type kvSegmentHook struct{}

func (h *kvSegmentHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *kvSegmentHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		defer h.segment(ctx, cmd.Name()).End()
		return next(ctx, cmd)
	}
}

func (h *kvSegmentHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		defer h.segment(ctx, "pipeline").End()
		return next(ctx, cmds)
	}
}

func (h *kvSegmentHook) segment(ctx context.Context, operation string) *newrelic.DatastoreSegment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil // a nil segment's End is a no-op
	}
	return &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastoreRedis,
		Operation:  operation,
		Collection: "kv",
	}
}
