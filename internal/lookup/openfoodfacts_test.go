// ABOUTME: Tests for the Open Food Facts client against a stub HTTP server.
// ABOUTME: Covers query encoding, kcal/kJ fallbacks, and best-effort degradation.
package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func stubServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cgi/search.pl" {
			t.Errorf("path = %s, want /cgi/search.pl", r.URL.Path)
		}
		if got := r.URL.Query().Get("search_terms"); got == "" {
			t.Error("missing search_terms")
		}
		if got := r.URL.Query().Get("json"); got != "1" {
			t.Errorf("json = %s, want 1", got)
		}
		if got := r.Header.Get("User-Agent"); got != "caltrack/1.0" {
			t.Errorf("User-Agent = %s", got)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearch(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `{
		"products": [
			{"product_name": "Oat Milk", "brands": "Oatly", "nutriments": {"energy-kcal_100g": 47}},
			{"product_name": "", "nutriments": {"energy-kcal_100g": 100}},
			{"product_name": "No Energy", "nutriments": {}},
			{"product_name": "Via kJ", "nutriments": {"energy_100g": 418.4}}
		]
	}`)

	c := &Client{BaseURL: srv.URL}
	results, err := c.Search(context.Background(), "oat milk")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len = %d, want 2 (nameless and energyless skipped)", len(results))
	}
	first := results[0]
	if first.Name != "Oat Milk" || first.Brand != "Oatly" || first.Calories != 47 {
		t.Errorf("first = %+v", first)
	}
	if first.ServingSize != 100 || first.ServingUnit != "grams" || first.Source != "openfoodfacts" {
		t.Errorf("serving metadata = %+v", first)
	}
	// 418.4 kJ / 4.184 = 100 kcal.
	if results[1].Calories != 100 {
		t.Errorf("kJ fallback = %d, want 100", results[1].Calories)
	}
}

func TestSearchCapsResults(t *testing.T) {
	body := `{"products": [`
	for i := 0; i < 15; i++ {
		if i > 0 {
			body += ","
		}
		body += `{"product_name": "Food", "nutriments": {"energy-kcal_100g": 100}}`
	}
	body += `]}`
	srv := stubServer(t, http.StatusOK, body)

	c := &Client{BaseURL: srv.URL}
	results, err := c.Search(context.Background(), "food")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 10 {
		t.Errorf("len = %d, want capped at 10", len(results))
	}
}

func TestSearchServerError(t *testing.T) {
	srv := stubServer(t, http.StatusInternalServerError, "boom")

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Search(context.Background(), "food"); err == nil {
		t.Error("expected error on 500")
	}
}

func TestSearchBestEffort(t *testing.T) {
	srv := stubServer(t, http.StatusInternalServerError, "boom")

	c := &Client{BaseURL: srv.URL}
	if got := c.SearchBestEffort(context.Background(), "food"); got != nil {
		t.Errorf("expected nil on failure, got %v", got)
	}
}

func TestCaloriesPer100gPreference(t *testing.T) {
	tests := []struct {
		name       string
		nutriments map[string]float64
		want       int
	}{
		{"kcal_100g preferred", map[string]float64{"energy-kcal_100g": 47, "energy_100g": 9999}, 47},
		{"kcal fallback", map[string]float64{"energy-kcal": 52}, 52},
		{"kJ conversion", map[string]float64{"energy_100g": 209.2}, 50},
		{"nothing usable", map[string]float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := caloriesPer100g(tt.nutriments); got != tt.want {
				t.Errorf("caloriesPer100g = %d, want %d", got, tt.want)
			}
		})
	}
}
