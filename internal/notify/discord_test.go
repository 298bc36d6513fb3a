package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPriceChange(oldPrice, newPrice float64) PriceChange {
	return PriceChange{
		Shop:         "demo.myshopify.com",
		Title:        "Canon EOS 90D DSLR Camera",
		SourceURL:    "https://www.ebay.com/itm/195554443332",
		Currency:     "USD",
		OldPrice:     oldPrice,
		NewPrice:     newPrice,
		VariantCount: 3,
	}
}

func TestDiscordNotifier_SendPriceChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		event      PriceChange
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "price drop uses green color",
			event:      testPriceChange(1199.99, 1149.99),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name:       "price rise uses orange color",
			event:      testPriceChange(1149.99, 1199.99),
			statusCode: http.StatusNoContent,
			wantColor:  colorOrange,
		},
		{
			name:       "discord returns 429 rate limited",
			event:      testPriceChange(1199.99, 1149.99),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			event:      testPriceChange(1199.99, 1149.99),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.SendPriceChange(context.Background(), &tt.event)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Contains(t, embed.Title, tt.event.Title)
			assert.Equal(t, tt.event.SourceURL, embed.URL)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, tt.event.Shop, fieldMap["Shop"])
			assert.Equal(t, "1199.99 USD", fieldMap["Old Price"])
			assert.Equal(t, "1149.99 USD", fieldMap["New Price"])
			assert.Equal(t, "3", fieldMap["Variants Updated"])
		})
	}
}

func TestDiscordNotifier_SendImportFailure(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscordNotifier(srv.URL)
	err := d.SendImportFailure(context.Background(), &ImportFailure{
		Shop:      "demo.myshopify.com",
		Title:     "Canon EOS 90D DSLR Camera",
		SourceURL: "https://www.ebay.com/itm/195554443332",
		ErrorText: "shopify: productCreate: throttled",
	})
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	embed := received.Embeds[0]
	assert.Equal(t, colorRed, embed.Color)
	assert.Contains(t, embed.Title, "Canon EOS 90D")
	assert.Equal(t, "shopify: productCreate: throttled", embed.Description)
}

func TestDiscordNotifier_SendImportFailure_LongError(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscordNotifier(srv.URL)
	err := d.SendImportFailure(context.Background(), &ImportFailure{
		Shop:      "demo.myshopify.com",
		Title:     "Canon EOS 90D DSLR Camera",
		ErrorText: strings.Repeat("x", 2000),
	})
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	desc := received.Embeds[0].Description
	assert.Len(t, desc, errorTextLimit+3)
	assert.True(t, strings.HasSuffix(desc, "..."))
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	event := testPriceChange(1199.99, 1149.99)
	err := d.SendPriceChange(context.Background(), &event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	// Edge case: Discord webhook with malformed URL.
	d := NewDiscordNotifier("://not-a-valid-url")
	event := testPriceChange(1199.99, 1149.99)
	err := d.SendPriceChange(context.Background(), &event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

// compile-time interface check.
var _ Notifier = (*DiscordNotifier)(nil)
