package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendPriceChange logs and discards a price change event.
func (n *NoOpNotifier) SendPriceChange(_ context.Context, event *PriceChange) error {
	n.log.Debug("notification discarded (no backend configured)",
		"shop", event.Shop,
		"title", event.Title,
		"old_price", event.OldPrice,
		"new_price", event.NewPrice,
	)
	return nil
}

// SendImportFailure logs and discards an import failure event.
func (n *NoOpNotifier) SendImportFailure(_ context.Context, event *ImportFailure) error {
	n.log.Debug("notification discarded (no backend configured)",
		"shop", event.Shop,
		"title", event.Title,
		"error", event.ErrorText,
	)
	return nil
}
