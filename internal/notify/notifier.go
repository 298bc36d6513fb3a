// Package notify defines the notification interface and implementations
// for import event delivery.
package notify

import (
	"context"
)

// PriceChange contains the data needed to announce a price update pushed
// to Shopify during a sync cycle.
type PriceChange struct {
	Shop         string
	Title        string
	SourceURL    string
	Currency     string
	OldPrice     float64
	NewPrice     float64
	VariantCount int
}

// ImportFailure contains the data needed to announce an import that could
// not be completed.
type ImportFailure struct {
	Shop      string
	Title     string
	SourceURL string
	ErrorText string
}

// Notifier defines the interface for sending import event notifications.
type Notifier interface {
	SendPriceChange(ctx context.Context, event *PriceChange) error
	SendImportFailure(ctx context.Context, event *ImportFailure) error
}
