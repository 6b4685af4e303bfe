package consumer

import (
	"context"
	"encoding/json"
	"time"

	"colfdesk/internal/dashboard"
	"colfdesk/internal/events"
	"colfdesk/internal/timesheet"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeContractLifecycle drops the cached dashboard snapshot whenever a
// contract changes status, so the next dashboard read recomputes alerts
// against the new contract set.
func ConsumeContractLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.contract_lifecycle")
	log.Info("contract lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("contract lifecycle consumer stopped")
				return
			}
			log.Error("fetch contract lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.ContractLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode contract lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		occurredAt := event.OccurredAt
		if occurredAt.IsZero() {
			occurredAt = time.Now().UTC()
		}
		cacheKey := dashboard.CacheKey(timesheet.MonthOf(occurredAt.UTC()))

		if err := rdb.Del(ctx, cacheKey).Err(); err != nil {
			log.Error("invalidate dashboard cache failed",
				zap.String("cache_key", cacheKey),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit contract lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("dashboard cache invalidated from contract lifecycle event",
			zap.String("contract_id", event.ContractID),
			zap.String("event_type", event.EventType),
			zap.String("cache_key", cacheKey),
		)
	}
}
