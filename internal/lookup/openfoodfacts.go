// ABOUTME: Best-effort online food search against Open Food Facts.
// ABOUTME: Lookup failures degrade to zero results, never crash the core.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// Result is one candidate food from the online catalog. Calories are
// per the reported serving size in grams.
type Result struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Calories    int     `json:"calories"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Source      string  `json:"source"`
}

// Client queries Open Food Facts. The zero value works; BaseURL and
// HTTPClient are overridable for tests.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

type offProduct struct {
	ProductName string             `json:"product_name"`
	Brands      string             `json:"brands"`
	Nutriments  map[string]float64 `json:"nutriments"`
}

// Search returns up to 10 candidate foods matching the query.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "20")

	reqURL := fmt.Sprintf("%s/cgi/search.pl?%s", base, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("User-Agent", "caltrack/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search request failed with status %d", resp.StatusCode)
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]Result, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if p.ProductName == "" {
			continue
		}
		calories := caloriesPer100g(p.Nutriments)
		if calories <= 0 {
			continue
		}
		results = append(results, Result{
			Name:        strings.TrimSpace(p.ProductName),
			Brand:       strings.TrimSpace(p.Brands),
			Calories:    calories,
			ServingSize: 100,
			ServingUnit: "grams",
			Source:      "openfoodfacts",
		})
		if len(results) == 10 {
			break
		}
	}
	return results, nil
}

// SearchBestEffort never fails: any lookup error surfaces as zero results.
func (c *Client) SearchBestEffort(ctx context.Context, query string) []Result {
	results, err := c.Search(ctx, query)
	if err != nil {
		return nil
	}
	return results
}

// caloriesPer100g prefers the kcal field and falls back to converting
// from kJ (1 kcal = 4.184 kJ).
func caloriesPer100g(nutriments map[string]float64) int {
	if kcal, ok := nutriments["energy-kcal_100g"]; ok && kcal > 0 {
		return int(math.Round(kcal))
	}
	if kcal, ok := nutriments["energy-kcal"]; ok && kcal > 0 {
		return int(math.Round(kcal))
	}
	if kj, ok := nutriments["energy_100g"]; ok && kj > 0 {
		return int(math.Round(kj / 4.184))
	}
	return 0
}
