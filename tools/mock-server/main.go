// Package main implements a mock eBay scraping service for local development.
// It serves canned envelope responses from JSON fixtures so the importer can
// run end-to-end without a RapidAPI subscription.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"time"
)

// fixtureFile maps eBay item IDs to the raw body the scraping service would
// return for them.
type fixtureFile map[string]json.RawMessage

type scrapeEnvelope struct {
	OriginalStatus int             `json:"original_status"`
	PcStatus       int             `json:"pc_status"`
	Body           json.RawMessage `json:"body,omitempty"`
}

type scrapeRequest struct {
	URL string `json:"url"`
}

var itemIDPattern = regexp.MustCompile(`/itm/(?:[^/]+/)?(\d+)`)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixturePath := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to products fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixturePath, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fixture))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /product", productHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock scraping service", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (fixtureFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func productHandler(logger *slog.Logger, fixture fixtureFile) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate the RapidAPI key header is present (don't verify it).
		if r.Header.Get("x-rapidapi-key") == "" {
			logger.Warn("request missing x-rapidapi-key header")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"message": "You are not subscribed to this API.",
			})
			return
		}

		var req scrapeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		m := itemIDPattern.FindStringSubmatch(req.URL)
		if m == nil {
			logger.Warn("no item ID in URL", "url", req.URL)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(scrapeEnvelope{OriginalStatus: 404, PcStatus: 200})
			return
		}
		itemID := m[1]

		body, ok := fixture[itemID]
		if !ok {
			logger.Info("item not in fixture", "item_id", itemID)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(scrapeEnvelope{OriginalStatus: 404, PcStatus: 200})
			return
		}

		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(scrapeEnvelope{
			OriginalStatus: 200,
			PcStatus:       200,
			Body:           body,
		})
		logger.Info("served product", "item_id", itemID)
	}
}
