package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// TransferEvent is the payload published for each notification
type TransferEvent struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// RedisNotifier publishes transfer notifications to a Redis pub/sub channel
// Publish failures are logged and dropped
type RedisNotifier struct {
	client  redis.UniversalClient
	channel string
	timeout time.Duration
	logger  *zap.Logger
}

var _ domain.Notifier = (*RedisNotifier)(nil)

// NewRedisNotifier creates a notifier publishing on channel
// A zero timeout means publishes are only bounded by the caller's context
func NewRedisNotifier(client redis.UniversalClient, channel string, timeout time.Duration, logger *zap.Logger) *RedisNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisNotifier{
		client:  client,
		channel: channel,
		timeout: timeout,
		logger:  logger.Named("notifier"),
	}
}

// Ping checks that Redis is reachable
func (n *RedisNotifier) Ping(ctx context.Context) error {
	if err := n.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// NotifyAboutTransfer publishes a TransferEvent for the account holder
func (n *RedisNotifier) NotifyAboutTransfer(ctx context.Context, account *domain.Account, message string) {
	event := TransferEvent{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Message:   message,
		SentAt:    time.Now().UTC(),
	}

	if err := n.publish(ctx, event); err != nil {
		n.logger.Warn("failed to publish transfer notification",
			zap.String("account_id", account.ID),
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return
	}

	n.logger.Debug("published transfer notification",
		zap.String("account_id", account.ID),
		zap.String("event_id", event.ID),
		zap.String("channel", n.channel),
	)
}

func (n *RedisNotifier) publish(ctx context.Context, event TransferEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode transfer event: %w", err)
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", n.channel, err)
	}

	return nil
}

// Close releases the Redis client
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
