package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) fixtureFile {
	t.Helper()
	f, err := loadFixture(filepath.Join("testdata", "products.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return f
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture) == 0 {
		t.Fatal("expected products in fixture")
	}
	if _, ok := fixture["195554443332"]; !ok {
		t.Error("expected camera fixture under item 195554443332")
	}
}

func scrapeBody(url string) io.Reader {
	return strings.NewReader(`{"url":"` + url + `"}`)
}

func TestProductHandler_Success(t *testing.T) {
	handler := productHandler(testLogger(), loadTestFixture(t))
	req := httptest.NewRequest(http.MethodPost, "/product",
		scrapeBody("https://www.ebay.com/itm/195554443332"))
	req.Header.Set("x-rapidapi-key", "test-key")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var env scrapeEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if env.OriginalStatus != 200 || env.PcStatus != 200 {
		t.Errorf("statuses=(%d,%d), want (200,200)", env.OriginalStatus, env.PcStatus)
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Body, &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !strings.Contains(body.Title, "Canon") {
		t.Errorf("title=%q, want Canon camera", body.Title)
	}
}

func TestProductHandler_SellerPathURL(t *testing.T) {
	handler := productHandler(testLogger(), loadTestFixture(t))
	req := httptest.NewRequest(http.MethodPost, "/product",
		scrapeBody("https://www.ebay.com/itm/canon-eos-2000d/195554443332"))
	req.Header.Set("x-rapidapi-key", "test-key")
	w := httptest.NewRecorder()

	handler(w, req)

	var env scrapeEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if env.OriginalStatus != 200 {
		t.Errorf("original_status=%d, want 200", env.OriginalStatus)
	}
}

func TestProductHandler_UnknownItem(t *testing.T) {
	handler := productHandler(testLogger(), loadTestFixture(t))
	req := httptest.NewRequest(http.MethodPost, "/product",
		scrapeBody("https://www.ebay.com/itm/999999999999"))
	req.Header.Set("x-rapidapi-key", "test-key")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var env scrapeEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if env.OriginalStatus != 404 {
		t.Errorf("original_status=%d, want 404", env.OriginalStatus)
	}
}

func TestProductHandler_MissingKey(t *testing.T) {
	handler := productHandler(testLogger(), loadTestFixture(t))
	req := httptest.NewRequest(http.MethodPost, "/product",
		scrapeBody("https://www.ebay.com/itm/195554443332"))
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}
}
