package apiclient

import (
	"SmartMenza-Backend/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContractServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	// Method-prefixed ServeMux patterns need Go 1.22; check the method
	// explicitly so the server behaves the same on Go 1.21.
	handle := func(method, path string, h http.HandlerFunc) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			h(w, r)
		})
	}
	handle(http.MethodPost, "/api/Auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "lozinka1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "failed to login"})
			return
		}

		_ = json.NewEncoder(w).Encode(AuthResult{
			AuthResponse: domain.AuthResponse{
				Message:  "login successful",
				Username: "mika",
				Email:    req.Email,
				Role:     "student",
			},
			Session: domain.SessionDescriptor{
				UserID:   "6f1c9a2e-0000-0000-0000-000000000001",
				Username: "mika",
				Role:     "student",
				Token:    "session-token",
			},
		})
	})
	handle(http.MethodPost, "/api/favorites/toggle", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "missing or invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(domain.ToggleFavoriteResponse{IsFavorite: true})
	})
	handle(http.MethodGet, "/api/ratings/summary", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.MealRatingSummaryResponse{
			MealID:        r.URL.Query().Get("mealId"),
			RatingsCount:  3,
			AverageRating: 4.3333,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientLoginStoresToken(t *testing.T) {
	server := newContractServer(t)
	client := NewClient(server.URL)

	res, err := client.Login(context.Background(), domain.LoginRequest{
		Email:    "mika@uni.example",
		Password: "lozinka1",
	})
	require.NoError(t, err)
	assert.Equal(t, "student", res.Role)
	assert.Equal(t, "session-token", res.Session.Token)

	// The token from login must flow into subsequent authenticated calls.
	toggle, err := client.ToggleFavorite(context.Background(), "6f1c9a2e-0000-0000-0000-00000000000a")
	require.NoError(t, err)
	assert.True(t, toggle.IsFavorite)
}

func TestClientSurfacesAPIError(t *testing.T) {
	server := newContractServer(t)
	client := NewClient(server.URL)

	_, err := client.Login(context.Background(), domain.LoginRequest{
		Email:    "mika@uni.example",
		Password: "wrong",
	})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "failed to login", apiErr.Message)
}

func TestClientUnauthenticatedToggleRejected(t *testing.T) {
	server := newContractServer(t)
	client := NewClient(server.URL)

	_, err := client.ToggleFavorite(context.Background(), "6f1c9a2e-0000-0000-0000-00000000000a")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClientRatingSummaryQuery(t *testing.T) {
	server := newContractServer(t)
	client := NewClient(server.URL)

	res, err := client.GetMealRatingSummary(context.Background(), "6f1c9a2e-0000-0000-0000-00000000000a")
	require.NoError(t, err)
	assert.Equal(t, "6f1c9a2e-0000-0000-0000-00000000000a", res.MealID)
	assert.Equal(t, int64(3), res.RatingsCount)
	assert.InDelta(t, 4.3333, res.AverageRating, 0.0001)
}
