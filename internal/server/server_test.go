package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/okozh/shoplist/internal/models"
	"github.com/okozh/shoplist/internal/service"
	"github.com/okozh/shoplist/internal/storage/sqlite"
)

// setupTestServer starts an httptest server over a real temp database and a
// throwaway static directory.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "shoplist-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	staticDir := filepath.Join(tempDir, "static")
	if err := os.MkdirAll(staticDir, 0755); err != nil {
		t.Fatalf("failed to create static dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>shoplist</html>"), 0644); err != nil {
		t.Fatalf("failed to write index.html: %v", err)
	}

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(New(service.NewListService(store), staticDir).Handler())
	t.Cleanup(srv.Close)

	return srv
}

func TestHealth(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestListsRoundTrip(t *testing.T) {
	srv := setupTestServer(t)

	// Empty collection to start.
	resp, err := http.Get(srv.URL + "/api/lists")
	if err != nil {
		t.Fatalf("GET lists failed: %v", err)
	}
	var lists []models.List
	if err := json.NewDecoder(resp.Body).Decode(&lists); err != nil {
		t.Fatalf("failed to decode lists: %v", err)
	}
	resp.Body.Close()
	if len(lists) != 0 {
		t.Fatalf("expected empty collection, got %d lists", len(lists))
	}

	// PUT a snapshot.
	snapshot := []models.List{
		{
			ID:   "l1",
			Name: "Groceries",
			Items: []models.Item{
				{ID: "i1", Name: "Milk", Category: "dairy"},
			},
		},
	}
	body, _ := json.Marshal(snapshot)
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/lists", bytes.NewReader(body))
	putResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT lists failed: %v", err)
	}
	putResp.Body.Close()
	if putResp.StatusCode != http.StatusNoContent {
		t.Fatalf("PUT status = %d, want 204", putResp.StatusCode)
	}

	// GET it back.
	resp, err = http.Get(srv.URL + "/api/lists")
	if err != nil {
		t.Fatalf("GET lists failed: %v", err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(&lists); err != nil {
		t.Fatalf("failed to decode lists: %v", err)
	}
	if len(lists) != 1 || lists[0].Name != "Groceries" {
		t.Errorf("unexpected lists: %+v", lists)
	}
	if len(lists[0].Items) != 1 || lists[0].Items[0].Category != "dairy" {
		t.Errorf("unexpected items: %+v", lists[0].Items)
	}
}

func TestListsBadBody(t *testing.T) {
	srv := setupTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/lists", bytes.NewReader([]byte("not json")))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT lists failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCategories(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/categories")
	if err != nil {
		t.Fatalf("GET categories failed: %v", err)
	}
	defer resp.Body.Close()

	var cats []models.Category
	if err := json.NewDecoder(resp.Body).Decode(&cats); err != nil {
		t.Fatalf("failed to decode categories: %v", err)
	}
	if len(cats) != 8 {
		t.Errorf("expected 8 categories, got %d", len(cats))
	}
}

func TestUnknownAPIPathIs404(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/nope")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestStaticFallbackToIndex(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/some/client/route")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(body, []byte("shoplist")) {
		t.Errorf("expected index.html content, got %q", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	// Generate at least one request first.
	if _, err := http.Get(srv.URL + "/api/health"); err != nil {
		t.Fatalf("health request failed: %v", err)
	}

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(body, []byte("shoplist_http_requests_total")) {
		t.Error("expected request counter in metrics output")
	}
}
