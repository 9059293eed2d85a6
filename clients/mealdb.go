package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"recipe-planner-api/estimate"
	"recipe-planner-api/logger"
	"recipe-planner-api/models"

	"golang.org/x/sync/errgroup"
)

// RecipeSource pulls recipes from the public recipe database and
// normalizes them into the local Recipe shape. Every method absorbs
// network and decode failures and returns an empty (or shorter) result;
// callers never see an error from this adapter.
type RecipeSource struct {
	baseURL string
	client  *http.Client
}

func NewRecipeSource(baseURL string) *RecipeSource {
	return &RecipeSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// mealsEnvelope is the shared response shape; individual meal fields are
// extracted one by one rather than trusting the payload shape.
type mealsEnvelope struct {
	Meals []map[string]interface{} `json:"meals"`
}

// Random fetches up to n random recipes by fanning out n single-recipe
// calls. Failed fetches are dropped, never aborting the batch.
func (rs *RecipeSource) Random(ctx context.Context, n int) []models.Recipe {
	if n <= 0 {
		return []models.Recipe{}
	}
	var mu sync.Mutex
	recipes := []models.Recipe{}
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			meals, err := rs.fetch(ctx, rs.baseURL+"/random.php")
			if err != nil {
				logger.Warn("random recipe fetch failed", "error", err)
				return nil
			}
			if len(meals) == 0 {
				return nil
			}
			recipe := rs.normalize(meals[0])
			mu.Lock()
			recipes = append(recipes, recipe)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // goroutines swallow their own failures
	return recipes
}

// Search queries by free text.
func (rs *RecipeSource) Search(ctx context.Context, query string) []models.Recipe {
	meals, err := rs.fetch(ctx, rs.baseURL+"/search.php?s="+urlEscape(query))
	if err != nil {
		logger.Warn("recipe search failed", "query", query, "error", err)
		return []models.Recipe{}
	}
	return rs.normalizeAll(meals)
}

// ByCategory lists up to n recipes in a category. The category listing
// returns stubs, so full records are fetched per id concurrently;
// partial failures shrink the result.
func (rs *RecipeSource) ByCategory(ctx context.Context, category string, n int) []models.Recipe {
	meals, err := rs.fetch(ctx, rs.baseURL+"/filter.php?c="+urlEscape(category))
	if err != nil {
		logger.Warn("recipe category fetch failed", "category", category, "error", err)
		return []models.Recipe{}
	}
	if n > 0 && len(meals) > n {
		meals = meals[:n]
	}
	results := make([]*models.Recipe, len(meals))
	g, ctx := errgroup.WithContext(ctx)
	for i, stub := range meals {
		i, stub := i, stub
		g.Go(func() error {
			id := field(stub, "idMeal")
			if id == "" {
				return nil
			}
			results[i] = rs.ByID(ctx, id)
			return nil
		})
	}
	_ = g.Wait()
	recipes := []models.Recipe{}
	for _, r := range results {
		if r != nil {
			recipes = append(recipes, *r)
		}
	}
	return recipes
}

// ByID looks up one recipe by its external id; nil when unavailable.
func (rs *RecipeSource) ByID(ctx context.Context, id string) *models.Recipe {
	meals, err := rs.fetch(ctx, rs.baseURL+"/lookup.php?i="+urlEscape(id))
	if err != nil {
		logger.Warn("recipe lookup failed", "id", id, "error", err)
		return nil
	}
	if len(meals) == 0 {
		return nil
	}
	recipe := rs.normalize(meals[0])
	return &recipe
}

func (rs *RecipeSource) fetch(ctx context.Context, url string) ([]map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := rs.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var envelope mealsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	return envelope.Meals, nil
}

func (rs *RecipeSource) normalizeAll(meals []map[string]interface{}) []models.Recipe {
	recipes := make([]models.Recipe, 0, len(meals))
	for _, m := range meals {
		recipes = append(recipes, rs.normalize(m))
	}
	return recipes
}

// normalize maps one external meal record onto the local Recipe shape.
// Nutrition, difficulty, timings and servings are missing upstream and
// filled with heuristic estimates.
func (rs *RecipeSource) normalize(meal map[string]interface{}) models.Recipe {
	category := field(meal, "strCategory")
	area := field(meal, "strArea")

	ingredients := []models.Ingredient{}
	for i := 1; i <= 20; i++ {
		name := strings.TrimSpace(field(meal, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		ingredients = append(ingredients, models.Ingredient{
			Name:     name,
			Quantity: strings.TrimSpace(field(meal, fmt.Sprintf("strMeasure%d", i))),
		})
	}

	instructions := []models.Instruction{}
	step := 1
	for _, line := range strings.Split(field(meal, "strInstructions"), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		instructions = append(instructions, models.Instruction{StepNumber: step, Description: line})
		step++
	}

	tags := []string{}
	for _, t := range strings.Split(field(meal, "strTags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	description := category
	if area != "" {
		description = strings.TrimSpace(area + " " + strings.ToLower(category) + " dish")
	}

	macros := estimate.MacrosForCategory(category)
	return models.Recipe{
		Title:        field(meal, "strMeal"),
		Description:  description,
		ImageURL:     field(meal, "strMealThumb"),
		PrepTime:     estimate.PrepTime(len(ingredients)),
		CookTime:     estimate.CookTime(category),
		Difficulty:   estimate.Difficulty(len(ingredients), len(instructions)),
		Calories:     macros.Calories,
		Protein:      macros.Protein,
		Fats:         macros.Fat,
		Carbs:        macros.Carbs,
		Servings:     estimate.DefaultServings,
		UserID:       models.ExternalUserID,
		Source:       "themealdb",
		ExternalID:   field(meal, "idMeal"),
		Tags:         tags,
		Ingredients:  ingredients,
		Instructions: instructions,
	}
}

func urlEscape(s string) string {
	return url.QueryEscape(s)
}

// field extracts a string value, tolerating null and missing keys.
func field(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
