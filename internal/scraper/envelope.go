package scraper

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// envelope is the outer wrapper returned by the scraping service.
// original_status reflects the upstream eBay response; pc_status is the
// service's own processing status. Both must be 200 for a usable body.
type envelope struct {
	OriginalStatus int             `json:"original_status"`
	PcStatus       int             `json:"pc_status"`
	Body           json.RawMessage `json:"body"`
}

// rawBody is the loosely-typed eBay page data inside the envelope. Every
// field is optional; the normalizer applies the defaulting rules. Decoded
// exactly once; nothing downstream touches raw JSON.
type rawBody struct {
	Title              string         `json:"title"`
	Price              *rawPrice      `json:"price"`
	Description        string         `json:"description"`
	Images             []string       `json:"images"`
	MainImage          string         `json:"main_image"`
	ProductInformation []rawNameValue `json:"product_information"`
	Rating             flexString     `json:"rating"`
	RatingsTotal       flexString     `json:"ratings_total"`
	Breadcrumbs        []rawCrumb     `json:"breadcrumbs"`
	AvailableQuantity  *int           `json:"available_quantity"`
	Condition          string         `json:"condition"`
	Options            []rawOption    `json:"options"`
}

type rawPrice struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type rawNameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type rawCrumb struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// rawOption maps a single option name to its descriptor, mirroring the
// service's one-key-per-object options array.
type rawOption map[string]rawOptionValues

type rawOptionValues struct {
	Values   []string `json:"values"`
	Selected string   `json:"selected"`
}

// names returns the option names of this descriptor in deterministic order.
// Well-formed descriptors carry exactly one key; sorting keeps malformed
// multi-key objects stable.
func (o rawOption) names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// flexString decodes a JSON string or number into a string, since the
// service is inconsistent about which it returns for ratings and counts.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

// float parses the value as a decimal, stripping thousands separators.
func (f flexString) float() (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(string(f)), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// int parses the value as an integer, stripping thousands separators.
func (f flexString) int() (int, bool) {
	v, ok := f.float()
	if !ok {
		return 0, false
	}
	return int(v), true
}
