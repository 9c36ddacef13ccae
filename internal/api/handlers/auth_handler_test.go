package handlers

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/internal/utils"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	registered map[string]domain.RegisterRequest
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{registered: map[string]domain.RegisterRequest{}}
}

func (f *fakeUserService) Register(_ context.Context, req domain.RegisterRequest) (domain.AuthResponse, domain.SessionDescriptor, error) {
	email := strings.ToLower(req.Email)
	if _, ok := f.registered[email]; ok {
		return domain.AuthResponse{}, domain.SessionDescriptor{}, domain.ErrEmailAlreadyExists
	}
	f.registered[email] = req

	res := domain.AuthResponse{
		Message:  domain.MessageSuccessRegister,
		Username: req.Username,
		Email:    email,
		Role:     req.RoleName,
	}
	session := domain.SessionDescriptor{
		UserID:   uuid.NewString(),
		Username: req.Username,
		Role:     req.RoleName,
		Token:    "token-" + req.Username,
	}
	return res, session, nil
}

func (f *fakeUserService) Login(_ context.Context, req domain.LoginRequest) (domain.AuthResponse, domain.SessionDescriptor, error) {
	stored, ok := f.registered[strings.ToLower(req.Email)]
	if !ok || stored.Password != req.Password {
		return domain.AuthResponse{}, domain.SessionDescriptor{}, domain.ErrCredentialsInvalid
	}
	res := domain.AuthResponse{
		Message:  domain.MessageSuccessLogin,
		Username: stored.Username,
		Email:    strings.ToLower(stored.Email),
		Role:     stored.RoleName,
	}
	session := domain.SessionDescriptor{
		UserID:   uuid.NewString(),
		Username: stored.Username,
		Role:     stored.RoleName,
		Token:    "token-" + stored.Username,
	}
	return res, session, nil
}

func (f *fakeUserService) Me(_ context.Context, _ string) (domain.MeResponse, error) {
	return domain.MeResponse{}, domain.ErrUserNotFound
}

func newAuthTestApp(svc *fakeUserService) *fiber.App {
	utils.InitValidator()
	handler := NewAuthHandler(svc, utils.Validate)

	app := fiber.New()
	app.Post("/api/Auth/registration", handler.Register)
	app.Post("/api/Auth/login", handler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterHandlerContractBody(t *testing.T) {
	app := newAuthTestApp(newFakeUserService())

	resp := postJSON(t, app, "/api/Auth/registration",
		`{"username":"mika","email":"mika@uni.example","password":"lozinka1","roleName":"student"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "poruka")
	assert.Contains(t, body, "uloga")
	assert.Contains(t, body, "session")
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	svc := newFakeUserService()
	app := newAuthTestApp(svc)

	body := `{"username":"mika","email":"mika@uni.example","password":"lozinka1","roleName":"student"}`
	resp := postJSON(t, app, "/api/Auth/registration", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/Auth/registration", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterHandlerValidation(t *testing.T) {
	app := newAuthTestApp(newFakeUserService())

	resp := postJSON(t, app, "/api/Auth/registration",
		`{"username":"mika","email":"not-an-email","password":"lozinka1","roleName":"student"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	svc := newFakeUserService()
	app := newAuthTestApp(svc)

	postJSON(t, app, "/api/Auth/registration",
		`{"username":"mika","email":"mika@uni.example","password":"lozinka1","roleName":"student"}`)

	resp := postJSON(t, app, "/api/Auth/login",
		`{"email":"mika@uni.example","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginHandlerReturnsSessionToken(t *testing.T) {
	svc := newFakeUserService()
	app := newAuthTestApp(svc)

	postJSON(t, app, "/api/Auth/registration",
		`{"username":"mika","email":"mika@uni.example","password":"lozinka1","roleName":"student"}`)

	resp := postJSON(t, app, "/api/Auth/login",
		`{"email":"mika@uni.example","password":"lozinka1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Session domain.SessionDescriptor `json:"session"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Session.Token)
	assert.NotEmpty(t, body.Session.UserID)
}
