package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-planner-api/models"
)

const mealFixture = `{"meals":[{
	"idMeal":"52772",
	"strMeal":"Teriyaki Chicken Casserole",
	"strCategory":"Chicken",
	"strArea":"Japanese",
	"strInstructions":"Preheat oven to 350.\r\n\r\nCombine soy sauce and sugar.\nBake for 30 minutes.",
	"strMealThumb":"https://example.test/casserole.jpg",
	"strTags":"Meat,Casserole",
	"strIngredient1":"soy sauce",
	"strMeasure1":"3/4 cup",
	"strIngredient2":"chicken breasts",
	"strMeasure2":"2",
	"strIngredient3":"",
	"strMeasure3":"",
	"strIngredient4":null,
	"strMeasure4":null
}]}`

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, mealFixture)
	}
	mux.HandleFunc("/random.php", serve)
	mux.HandleFunc("/search.php", serve)
	mux.HandleFunc("/lookup.php", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("i") != "52772" {
			fmt.Fprint(w, `{"meals":null}`)
			return
		}
		fmt.Fprint(w, mealFixture)
	})
	mux.HandleFunc("/filter.php", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole"}]}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRecipeSource_Normalization(t *testing.T) {
	rs := NewRecipeSource(fixtureServer(t).URL)

	recipe := rs.ByID(context.Background(), "52772")
	if recipe == nil {
		t.Fatal("expected a recipe")
	}
	if recipe.Title != "Teriyaki Chicken Casserole" {
		t.Fatalf("title: %q", recipe.Title)
	}
	if recipe.UserID != models.ExternalUserID || recipe.Source != "themealdb" || recipe.ExternalID != "52772" {
		t.Fatalf("external provenance wrong: %+v", recipe)
	}
	if len(recipe.Ingredients) != 2 {
		t.Fatalf("blank and null ingredient slots must be skipped, got %d", len(recipe.Ingredients))
	}
	if recipe.Ingredients[0].Name != "soy sauce" || recipe.Ingredients[0].Quantity != "3/4 cup" {
		t.Fatalf("ingredient normalization wrong: %+v", recipe.Ingredients[0])
	}
	if len(recipe.Instructions) != 3 {
		t.Fatalf("expected 3 instruction lines, got %d", len(recipe.Instructions))
	}
	for i, step := range recipe.Instructions {
		if step.StepNumber != i+1 {
			t.Fatalf("steps not numbered 1..n: %+v", recipe.Instructions)
		}
	}
	if len(recipe.Tags) != 2 || recipe.Tags[0] != "Meat" {
		t.Fatalf("tags not split: %+v", recipe.Tags)
	}
	if recipe.Difficulty == "" || recipe.Calories == 0 || recipe.Servings == 0 {
		t.Fatalf("heuristic enrichment missing: %+v", recipe)
	}
}

func TestRecipeSource_Random_FanOut(t *testing.T) {
	rs := NewRecipeSource(fixtureServer(t).URL)
	recipes := rs.Random(context.Background(), 3)
	if len(recipes) != 3 {
		t.Fatalf("expected 3 recipes, got %d", len(recipes))
	}
	if got := rs.Random(context.Background(), 0); len(got) != 0 {
		t.Fatalf("n=0 must be empty, got %d", len(got))
	}
}

func TestRecipeSource_ByCategory(t *testing.T) {
	rs := NewRecipeSource(fixtureServer(t).URL)
	recipes := rs.ByCategory(context.Background(), "Chicken", 5)
	if len(recipes) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(recipes))
	}
	if len(recipes[0].Ingredients) == 0 {
		t.Fatal("category results must be full records, not stubs")
	}
}

func TestRecipeSource_AbsorbsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	rs := NewRecipeSource(srv.URL)

	if got := rs.Search(context.Background(), "soup"); len(got) != 0 {
		t.Fatalf("failed search must be empty, got %d", len(got))
	}
	if got := rs.Random(context.Background(), 4); len(got) != 0 {
		t.Fatalf("failed random batch must be empty, got %d", len(got))
	}
	if got := rs.ByID(context.Background(), "1"); got != nil {
		t.Fatalf("failed lookup must be nil, got %+v", got)
	}
}

func TestRecipeSource_MissingIDIsNil(t *testing.T) {
	rs := NewRecipeSource(fixtureServer(t).URL)
	if got := rs.ByID(context.Background(), "99999"); got != nil {
		t.Fatalf("unknown id must be nil, got %+v", got)
	}
}
