package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/simaogato/ledger-backend/internal/domain"
)

const testChannel = "ledger.transfers"

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisNotifier_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)

	sub := client.Subscribe(ctx, testChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	notifier := NewRedisNotifier(client, testChannel, time.Second, zap.NewNop())
	require.NoError(t, notifier.Ping(ctx))

	account := domain.NewAccount("Id-456", decimal.NewFromInt(1200))
	notifier.NotifyAboutTransfer(ctx, account, "200 amount transferred from account Id-123")

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, testChannel, msg.Channel)

		var event TransferEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		assert.Equal(t, "Id-456", event.AccountID)
		assert.Equal(t, "200 amount transferred from account Id-123", event.Message)
		assert.False(t, event.SentAt.IsZero())
		_, err := uuid.Parse(event.ID)
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no message published")
	}
}

func TestRedisNotifier_FailureIsLoggedNotReturned(t *testing.T) {
	mr, client := newTestRedis(t)
	core, logs := observer.New(zapcore.WarnLevel)
	notifier := NewRedisNotifier(client, testChannel, 200*time.Millisecond, zap.New(core))

	mr.Close()

	assert.NotPanics(t, func() {
		notifier.NotifyAboutTransfer(context.Background(), domain.NewAccount("Id-123", decimal.Zero), "msg")
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "failed to publish transfer notification", entry.Message)
	assert.Equal(t, "Id-123", entry.ContextMap()["account_id"])
}

func TestRedisNotifier_PingFailure(t *testing.T) {
	mr, client := newTestRedis(t)
	notifier := NewRedisNotifier(client, testChannel, time.Second, nil)

	mr.Close()

	err := notifier.Ping(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping redis")
}
