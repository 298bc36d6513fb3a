package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	colorGreen  = 0x2ECC71 // price dropped
	colorOrange = 0xE67E22 // price rose
	colorRed    = 0xE74C3C // import failed
)

// errorTextLimit caps the failure description; Discord rejects embed
// descriptions over 4096 characters.
const errorTextLimit = 500

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendPriceChange sends a price change event as a Discord embed.
func (d *DiscordNotifier) SendPriceChange(ctx context.Context, event *PriceChange) error {
	color := colorGreen
	if event.NewPrice > event.OldPrice {
		color = colorOrange
	}

	embed := discordEmbed{
		Title: fmt.Sprintf("Price Update: %s", event.Title),
		URL:   event.SourceURL,
		Color: color,
		Fields: []discordEmbedField{
			{Name: "Shop", Value: event.Shop, Inline: true},
			{Name: "Old Price", Value: formatAmount(event.OldPrice, event.Currency), Inline: true},
			{Name: "New Price", Value: formatAmount(event.NewPrice, event.Currency), Inline: true},
			{Name: "Variants Updated", Value: fmt.Sprintf("%d", event.VariantCount), Inline: true},
		},
	}
	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

// SendImportFailure sends an import failure event as a Discord embed.
func (d *DiscordNotifier) SendImportFailure(ctx context.Context, event *ImportFailure) error {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Import Failed: %s", event.Title),
		URL:         event.SourceURL,
		Color:       colorRed,
		Description: truncateError(event.ErrorText),
		Fields: []discordEmbedField{
			{Name: "Shop", Value: event.Shop, Inline: true},
		},
	}
	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

func formatAmount(v float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, currency)
}

func truncateError(s string) string {
	if len(s) <= errorTextLimit {
		return s
	}
	return s[:errorTextLimit] + "..."
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
