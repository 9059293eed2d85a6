package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-planner-api/logger"
)

// Facts is a per-100g nutrition tuple for one ingredient.
type Facts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// NutritionClient looks up ingredient nutrition facts from the public
// food database. Lookups that fail or find nothing report ok=false; the
// adapter never surfaces an error. It only enriches shopping-list views
// and is never required for core correctness.
type NutritionClient struct {
	baseURL string
	client  *http.Client
}

func NewNutritionClient(baseURL string) *NutritionClient {
	return &NutritionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type offNutriments struct {
	EnergyKcal    float64 `json:"energy-kcal_100g"`
	Proteins      float64 `json:"proteins_100g"`
	Fat           float64 `json:"fat_100g"`
	Carbohydrates float64 `json:"carbohydrates_100g"`
}

type offProduct struct {
	ProductName string        `json:"product_name"`
	Nutriments  offNutriments `json:"nutriments"`
}

// ByName searches products by free-text name and returns the first hit
// with usable figures.
func (nc *NutritionClient) ByName(ctx context.Context, name string) (Facts, bool) {
	endpoint := nc.baseURL + "/cgi/search.pl?search_simple=1&action=process&json=1&page_size=5&search_terms=" + urlEscape(name)
	var payload struct {
		Products []offProduct `json:"products"`
	}
	if err := nc.get(ctx, endpoint, &payload); err != nil {
		logger.Warn("nutrition search failed", "name", name, "error", err)
		return Facts{}, false
	}
	for _, p := range payload.Products {
		if facts, ok := toFacts(p.Nutriments); ok {
			return facts, true
		}
	}
	return Facts{}, false
}

// ByID looks a product up by its external id (barcode).
func (nc *NutritionClient) ByID(ctx context.Context, id string) (Facts, bool) {
	endpoint := nc.baseURL + "/api/v0/product/" + urlEscape(id) + ".json"
	var payload struct {
		Status  int        `json:"status"`
		Product offProduct `json:"product"`
	}
	if err := nc.get(ctx, endpoint, &payload); err != nil {
		logger.Warn("nutrition lookup failed", "id", id, "error", err)
		return Facts{}, false
	}
	if payload.Status != 1 {
		return Facts{}, false
	}
	return toFacts(payload.Product.Nutriments)
}

func (nc *NutritionClient) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := nc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// toFacts rejects products with no figures at all; a product reporting
// zero across the board is a data hole, not a zero-calorie food.
func toFacts(n offNutriments) (Facts, bool) {
	if n.EnergyKcal == 0 && n.Proteins == 0 && n.Fat == 0 && n.Carbohydrates == 0 {
		return Facts{}, false
	}
	return Facts{
		Calories: n.EnergyKcal,
		Protein:  n.Proteins,
		Fat:      n.Fat,
		Carbs:    n.Carbohydrates,
	}, true
}
