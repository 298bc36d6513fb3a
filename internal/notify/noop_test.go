package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_SendPriceChange(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.SendPriceChange(context.Background(), &PriceChange{
		Shop:     "demo.myshopify.com",
		Title:    "Canon EOS 90D",
		OldPrice: 1199.99,
		NewPrice: 1149.99,
	})
	require.NoError(t, err)
}

func TestNoOpNotifier_SendImportFailure(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.SendImportFailure(context.Background(), &ImportFailure{
		Shop:      "demo.myshopify.com",
		Title:     "Canon EOS 90D",
		ErrorText: "shopify: throttled",
	})
	require.NoError(t, err)
}

// compile-time interface check.
var _ Notifier = (*NoOpNotifier)(nil)
