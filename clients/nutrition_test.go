package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func nutritionServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/cgi/search.pl", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"products":[
			{"product_name":"Mystery","nutriments":{}},
			{"product_name":"Whole Milk","nutriments":{"energy-kcal_100g":64,"proteins_100g":3.3,"fat_100g":3.6,"carbohydrates_100g":4.7}}
		]}`)
	})
	mux.HandleFunc("/api/v0/product/123.json", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":1,"product":{"product_name":"Oats","nutriments":{"energy-kcal_100g":379,"proteins_100g":13,"fat_100g":6.5,"carbohydrates_100g":67}}}`)
	})
	mux.HandleFunc("/api/v0/product/404.json", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":0}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNutritionClient_ByName(t *testing.T) {
	nc := NewNutritionClient(nutritionServer(t).URL)

	facts, ok := nc.ByName(context.Background(), "milk")
	if !ok {
		t.Fatal("expected facts for milk")
	}
	// The first product has no figures and must be skipped.
	if facts.Calories != 64 || facts.Protein != 3.3 {
		t.Fatalf("wrong product picked: %+v", facts)
	}
}

func TestNutritionClient_ByID(t *testing.T) {
	nc := NewNutritionClient(nutritionServer(t).URL)

	facts, ok := nc.ByID(context.Background(), "123")
	if !ok || facts.Carbs != 67 {
		t.Fatalf("expected oats facts, got %+v (ok=%v)", facts, ok)
	}

	if _, ok := nc.ByID(context.Background(), "404"); ok {
		t.Fatal("status 0 must report unavailable")
	}
}

func TestNutritionClient_AbsorbsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	nc := NewNutritionClient(srv.URL)

	if _, ok := nc.ByName(context.Background(), "milk"); ok {
		t.Fatal("failed search must report unavailable")
	}
	if _, ok := nc.ByID(context.Background(), "123"); ok {
		t.Fatal("failed lookup must report unavailable")
	}
}
