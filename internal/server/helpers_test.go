package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipeas/internal/config"
	"recipeas/internal/models"
	"recipeas/internal/repository"
	"recipeas/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeGateway is an in-memory recipe API used by handler tests.
type fakeGateway struct {
	recipes     map[int]*models.RecipeSummary
	ingredients []models.IngredientHit
	err         error
}

func (f *fakeGateway) GetRecipe(_ context.Context, id int) (*models.RecipeSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.recipes[id]; ok {
		return r, nil
	}
	return nil, models.NewNotFoundError("Recipe", id)
}

func (f *fakeGateway) Search(_ context.Context, _ models.SearchCriteria) ([]models.RecipeSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.RecipeSummary, 0, len(f.recipes))
	for _, r := range f.recipes {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeGateway) SearchIngredients(_ context.Context, _ string) ([]models.IngredientHit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ingredients, nil
}

// newTestServer wires a Server against an in-memory SQLite database and the
// fake gateway, then mounts the real route table.
func newTestServer(t *testing.T, gw *fakeGateway) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PantryItem{}, &models.Favorite{}))

	if gw == nil {
		gw = &fakeGateway{recipes: map[int]*models.RecipeSummary{}}
	}

	userRepo := repository.NewUserRepository(db)
	pantryRepo := repository.NewPantryRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	s := &Server{
		config:       &config.Config{JWTSecret: "test_secret"},
		db:           db,
		userRepo:     userRepo,
		pantryRepo:   pantryRepo,
		favoriteRepo: favoriteRepo,
		recipes:      gw,
	}
	s.userService = service.NewUserService(userRepo)
	s.pantryService = service.NewPantryService(pantryRepo)
	s.favoriteSvc = service.NewFavoriteService(favoriteRepo, gw)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, db
}

// signupUser inserts a user directly and returns it with a session token.
func signupUser(t *testing.T, s *Server, db *gorm.DB, email string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("friends"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.Create(user).Error)

	token, err := s.generateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

// doJSON performs a request with an optional session token and JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
