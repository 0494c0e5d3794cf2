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

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"email":      "ross@example.com",
				"password":   "dinosaurs",
				"first_name": "Ross",
				"last_name":  "Geller",
			},
			mockSetup: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate email",
			body: map[string]string{
				"email":      "exists@example.com",
				"password":   "dinosaurs",
				"first_name": "Ross",
				"last_name":  "Geller",
			},
			mockSetup: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(models.NewDuplicateEmailError())
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Invalid email",
			body: map[string]string{
				"email":      "not-an-email",
				"password":   "dinosaurs",
				"first_name": "Ross",
				"last_name":  "Geller",
			},
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Short password",
			body: map[string]string{
				"email":      "ross@example.com",
				"password":   "abc",
				"first_name": "Ross",
				"last_name":  "Geller",
			},
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing first name",
			body: map[string]string{
				"email":    "ross@example.com",
				"password": "dinosaurs",
			},
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockUserRepository)
			tt.mockSetup(mockRepo)

			s := &Server{
				config:   &config.Config{JWTSecret: "test_secret"},
				userRepo: mockRepo,
			}
			app.Post("/signup", s.Signup)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				var out struct {
					Token string `json:"token"`
					User  struct {
						Email    string `json:"email"`
						Password string `json:"password"`
					} `json:"user"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
				assert.NotEmpty(t, out.Token)
				assert.Equal(t, "ross@example.com", out.User.Email)
				assert.Empty(t, out.User.Password, "password hash must never appear in responses")

				var sessionSet bool
				for _, c := range resp.Cookies() {
					if c.Name == sessionCookie && c.Value != "" {
						sessionSet = true
						assert.True(t, c.HttpOnly)
					}
				}
				assert.True(t, sessionSet, "signup should set the session cookie")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("dinosaurs"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: 1, Email: "ross@example.com", Password: string(hashed)}

	newApp := func(m *MockUserRepository) *fiber.App {
		app := fiber.New()
		s := &Server{
			config:   &config.Config{JWTSecret: "test_secret"},
			userRepo: m,
		}
		app.Post("/login", s.Login)
		return app
	}

	login := func(t *testing.T, app *fiber.App, email, password string) *http.Response {
		t.Helper()
		body, _ := json.Marshal(map[string]string{"email": email, "password": password})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("valid credentials return a token and cookie", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByEmail", mock.Anything, "ross@example.com").Return(stored, nil)
		resp := login(t, newApp(mockRepo), "ross@example.com", "dinosaurs")
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var out struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.NotEmpty(t, out.Token)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
		mockRepo.On("GetByEmail", mock.Anything, "ross@example.com").Return(stored, nil)
		app := newApp(mockRepo)

		unknownResp := login(t, app, "nobody@example.com", "dinosaurs")
		defer func() { _ = unknownResp.Body.Close() }()
		wrongResp := login(t, app, "ross@example.com", "wrongpass")
		defer func() { _ = wrongResp.Body.Close() }()

		assert.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)

		unknownBody, _ := io.ReadAll(unknownResp.Body)
		wrongBody, _ := io.ReadAll(wrongResp.Body)
		assert.JSONEq(t, string(unknownBody), string(wrongBody))
	})
}

func TestLogout_Anonymous(t *testing.T) {
	app := fiber.New()
	s := &Server{config: &config.Config{JWTSecret: "test_secret"}}
	app.Post("/logout", s.Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success, "logging out while anonymous is still a success")
}
