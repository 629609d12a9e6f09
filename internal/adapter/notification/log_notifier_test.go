package notification

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/simaogato/ledger-backend/internal/domain"
)

func TestLogNotifier_NotifyAboutTransfer(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	notifier := NewLogNotifier(zap.New(core))

	account := domain.NewAccount("Id-123", decimal.NewFromInt(800))
	notifier.NotifyAboutTransfer(context.Background(), account, "200 amount transferred to account Id-456")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "sending transfer notification", entry.Message)
	assert.Equal(t, "notifier", entry.LoggerName)

	fields := entry.ContextMap()
	assert.Equal(t, "Id-123", fields["account_id"])
	assert.Equal(t, "200 amount transferred to account Id-456", fields["message"])
}

func TestLogNotifier_NilLogger(t *testing.T) {
	notifier := NewLogNotifier(nil)

	assert.NotPanics(t, func() {
		notifier.NotifyAboutTransfer(context.Background(), domain.NewAccount("Id-123", decimal.Zero), "hello")
	})
}
