// Package gateway implements the client for the external recipe API.
// The API is treated as an opaque collaborator: a fixed subset of response
// fields is extracted and everything else is ignored. Failures come back as
// explicit NOT_FOUND or SERVICE_UNAVAILABLE results, never as panics or
// hung requests.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"recipeas/internal/cache"
	"recipeas/internal/config"
	"recipeas/internal/middleware"
	"recipeas/internal/models"
)

// RecipeGateway is the boundary contract the rest of the application depends on.
type RecipeGateway interface {
	GetRecipe(ctx context.Context, id int) (*models.RecipeSummary, error)
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.RecipeSummary, error)
	SearchIngredients(ctx context.Context, name string) ([]models.IngredientHit, error)
}

// Client calls a Spoonacular-compatible recipe API over HTTPS with the API
// credential passed as a query parameter.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a gateway client from configuration. The HTTP client
// carries a hard timeout so a stalled upstream surfaces as
// SERVICE_UNAVAILABLE instead of hanging the request.
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.RecipeAPITimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.RecipeAPIURL,
		apiKey:  cfg.RecipeAPIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// searchResponse is the envelope of the complex search endpoint.
type searchResponse struct {
	Results []models.RecipeSummary `json:"results"`
}

// ingredientSearchResponse is the envelope of the ingredient search endpoint.
type ingredientSearchResponse struct {
	Results []models.IngredientHit `json:"results"`
}

// GetRecipe fetches one recipe by its external id. Results are cached:
// recipe metadata is effectively immutable upstream.
func (c *Client) GetRecipe(ctx context.Context, id int) (*models.RecipeSummary, error) {
	var summary models.RecipeSummary
	err := cache.Aside(ctx, cache.RecipeKey(id), &summary, cache.RecipeTTL, func() error {
		endpoint := fmt.Sprintf("/recipes/%d/information", id)
		body, err := c.get(ctx, "recipe_information", endpoint, url.Values{})
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, &summary); err != nil {
			return models.NewServiceUnavailableError("Recipe service returned an unreadable response", err)
		}
		return nil
	})
	if err != nil {
		if models.IsCode(err, "NOT_FOUND") {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, err
	}
	return &summary, nil
}

// Search runs a complex recipe search with the supported filters.
func (c *Client) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.RecipeSummary, error) {
	params := url.Values{}
	if criteria.Query != "" {
		params.Set("query", criteria.Query)
	}
	if criteria.Diet != "" {
		params.Set("diet", criteria.Diet)
	}
	if criteria.Cuisine != "" {
		params.Set("cuisine", criteria.Cuisine)
	}
	if criteria.IncludeIngredients != "" {
		params.Set("includeIngredients", criteria.IncludeIngredients)
	}
	number := criteria.Number
	if number <= 0 || number > 100 {
		number = 20
	}
	params.Set("number", strconv.Itoa(number))
	params.Set("addRecipeInformation", "true")

	body, err := c.get(ctx, "complex_search", "/recipes/complexSearch", params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, models.NewServiceUnavailableError("Recipe service returned an unreadable response", err)
	}
	return resp.Results, nil
}

// SearchIngredients looks up ingredients by name.
func (c *Client) SearchIngredients(ctx context.Context, name string) ([]models.IngredientHit, error) {
	params := url.Values{}
	params.Set("query", name)
	params.Set("number", "10")

	body, err := c.get(ctx, "ingredient_search", "/food/ingredients/search", params)
	if err != nil {
		return nil, err
	}

	var resp ingredientSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, models.NewServiceUnavailableError("Recipe service returned an unreadable response", err)
	}
	return resp.Results, nil
}

// get performs one API call and maps transport and status failures onto the
// application error taxonomy.
func (c *Client) get(ctx context.Context, endpointLabel, path string, params url.Values) ([]byte, error) {
	params.Set("apiKey", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	middleware.RecipeAPILatency.WithLabelValues(endpointLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		middleware.RecipeAPIRequests.WithLabelValues(endpointLabel, "error").Inc()
		return nil, models.NewServiceUnavailableError("Recipe service is unavailable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		middleware.RecipeAPIRequests.WithLabelValues(endpointLabel, "ok").Inc()
	case resp.StatusCode == http.StatusNotFound:
		middleware.RecipeAPIRequests.WithLabelValues(endpointLabel, "not_found").Inc()
		return nil, models.NewNotFoundError("Recipe", path)
	default:
		// Quota exhaustion (402/429) and upstream 5xx are all unavailability
		// from the caller's point of view.
		middleware.RecipeAPIRequests.WithLabelValues(endpointLabel, "error").Inc()
		return nil, models.NewServiceUnavailableError(
			fmt.Sprintf("Recipe service returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, models.NewServiceUnavailableError("Recipe service response could not be read", err)
	}
	return body, nil
}
