package scraper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devyassinepro/ebay-importer/internal/scraper"
)

func TestExtractItemID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "canonical product URL",
			url:  "https://www.ebay.com/itm/234567890123",
			want: "234567890123",
		},
		{
			name: "URL with trailing query",
			url:  "https://www.ebay.com/itm/234567890123?hash=item123&var=0",
			want: "234567890123",
		},
		{
			name:    "seo slug between itm and the ID",
			url:     "https://www.ebay.com/itm/vintage-camera/195554443332",
			wantErr: true,
		},
		{
			name: "uppercase ITM segment",
			url:  "https://www.ebay.co.uk/ITM/334455667788",
			want: "334455667788",
		},
		{
			name: "international domain",
			url:  "https://www.ebay.de/itm/112233445566",
			want: "112233445566",
		},
		{
			name:    "no ebay domain marker",
			url:     "https://example.com/itm/234567890123",
			wantErr: true,
		},
		{
			name:    "ebay domain without item segment",
			url:     "https://www.ebay.com/sch/i.html?_nkw=camera",
			wantErr: true,
		},
		{
			name:    "item segment without digits",
			url:     "https://www.ebay.com/itm/not-a-number",
			wantErr: true,
		},
		{
			name:    "empty string",
			url:     "",
			wantErr: true,
		},
		{
			name:    "garbage input",
			url:     "not a url at all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := scraper.ExtractItemID(tt.url)

			if tt.wantErr {
				require.ErrorIs(t, err, scraper.ErrInvalidURL)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
