package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// LogNotifier writes every transfer notification to the structured log
type LogNotifier struct {
	logger *zap.Logger
}

var _ domain.Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a notifier backed by logger
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("notifier")}
}

// NotifyAboutTransfer logs the message for the account holder
func (n *LogNotifier) NotifyAboutTransfer(_ context.Context, account *domain.Account, message string) {
	n.logger.Info("sending transfer notification",
		zap.String("account_id", account.ID),
		zap.String("message", message),
	)
}
