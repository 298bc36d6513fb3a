package scraper

import (
	"strings"

	"github.com/devyassinepro/ebay-importer/pkg/types"
)

const outOfStockMarker = "out of stock"

// parseOptions flattens the service's one-key-per-object options array into
// ordered ProductOptions. Values are trimmed, out-of-stock values dropped,
// duplicates collapsed to their first occurrence, and options left with no
// values are dropped entirely.
func parseOptions(raw []rawOption) []types.ProductOption {
	options := make([]types.ProductOption, 0, len(raw))

	for _, descriptor := range raw {
		for _, name := range descriptor.names() {
			values := make([]string, 0, len(descriptor[name].Values))
			seen := make(map[string]struct{}, len(descriptor[name].Values))
			for _, v := range descriptor[name].Values {
				v = strings.TrimSpace(v)
				if v == "" || strings.Contains(strings.ToLower(v), outOfStockMarker) {
					continue
				}
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				values = append(values, v)
			}
			if len(values) == 0 {
				continue
			}
			options = append(options, types.ProductOption{Name: name, Values: values})
		}
	}

	return options
}

// expandVariants computes the cartesian product of option values using
// nested index counters. Variant order is the lexicographic iteration over
// option index then value index, so identical input always yields identical
// ordering. Every variant gets one entry per option, available=true, an
// empty item ID (the service exposes none per combination), and the base
// product price.
func expandVariants(options []types.ProductOption, basePrice float64) []types.ProductVariant {
	if len(options) == 0 {
		return []types.ProductVariant{}
	}

	total := 1
	for _, opt := range options {
		total *= len(opt.Values)
	}

	variants := make([]types.ProductVariant, 0, total)
	indices := make([]int, len(options))

	for range total {
		selected := make(map[string]string, len(options))
		for i, opt := range options {
			selected[opt.Name] = opt.Values[indices[i]]
		}

		variants = append(variants, types.ProductVariant{
			ItemID:    "",
			Options:   selected,
			Available: true,
			Price:     basePrice,
		})

		// Advance the counters rightmost-first, like an odometer.
		for i := len(indices) - 1; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(options[i].Values) {
				break
			}
			indices[i] = 0
		}
	}

	return variants
}
