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

type fakeRatingService struct {
	submitted map[string]domain.RatingCommentResponse
}

func newFakeRatingService() *fakeRatingService {
	return &fakeRatingService{submitted: map[string]domain.RatingCommentResponse{}}
}

func (f *fakeRatingService) SubmitRating(_ context.Context, req domain.SubmitRatingRequest, userID string) (domain.RatingCommentResponse, error) {
	key := userID + "/" + req.MealID
	res, ok := f.submitted[key]
	if !ok {
		res = domain.RatingCommentResponse{
			ID:     uuid.NewString(),
			MealID: req.MealID,
			UserID: userID,
		}
	}
	res.Rating = req.Rating
	res.Comment = req.Comment
	f.submitted[key] = res
	return res, nil
}

func (f *fakeRatingService) UpdateRating(_ context.Context, req domain.SubmitRatingRequest, userID string) (domain.RatingCommentResponse, error) {
	key := userID + "/" + req.MealID
	if _, ok := f.submitted[key]; !ok {
		return domain.RatingCommentResponse{}, domain.ErrRatingNotFound
	}
	return f.SubmitRating(context.Background(), req, userID)
}

func (f *fakeRatingService) GetMealRatingSummary(_ context.Context, mealID string) (domain.MealRatingSummaryResponse, error) {
	if _, err := uuid.Parse(mealID); err != nil {
		return domain.MealRatingSummaryResponse{}, domain.ErrParseUUID
	}
	return domain.MealRatingSummaryResponse{MealID: mealID}, nil
}

func (f *fakeRatingService) GetOverallStats(_ context.Context, _, _ string) (domain.OverallStatsResponse, error) {
	return domain.OverallStatsResponse{}, nil
}

func newRatingTestApp(svc *fakeRatingService, userID string) *fiber.App {
	utils.InitValidator()
	handler := NewRatingHandler(svc, utils.Validate)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Post("/api/ratings", handler.SubmitRating)
	app.Put("/api/ratings", handler.UpdateRating)
	app.Get("/api/ratings/summary", handler.GetMealRatingSummary)
	return app
}

func TestSubmitRatingHandler(t *testing.T) {
	svc := newFakeRatingService()
	app := newRatingTestApp(svc, uuid.NewString())

	body := `{"mealId":"` + uuid.NewString() + `","rating":4,"comment":"fine"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var res domain.RatingCommentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 4, res.Rating)
	assert.Equal(t, "fine", res.Comment)
}

func TestSubmitRatingHandlerRejectsOutOfRange(t *testing.T) {
	svc := newFakeRatingService()
	app := newRatingTestApp(svc, uuid.NewString())

	body := `{"mealId":"` + uuid.NewString() + `","rating":9}`
	req := httptest.NewRequest(http.MethodPost, "/api/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, svc.submitted)
}

func TestUpdateRatingHandlerMissingRating(t *testing.T) {
	svc := newFakeRatingService()
	app := newRatingTestApp(svc, uuid.NewString())

	body := `{"mealId":"` + uuid.NewString() + `","rating":4}`
	req := httptest.NewRequest(http.MethodPut, "/api/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRatingSummaryHandlerRequiresMealID(t *testing.T) {
	svc := newFakeRatingService()
	app := newRatingTestApp(svc, uuid.NewString())

	req := httptest.NewRequest(http.MethodGet, "/api/ratings/summary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRatingSummaryHandler(t *testing.T) {
	svc := newFakeRatingService()
	app := newRatingTestApp(svc, uuid.NewString())

	mealID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/ratings/summary?mealId="+mealID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res domain.MealRatingSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, mealID, res.MealID)
	assert.Equal(t, int64(0), res.RatingsCount)
	assert.Equal(t, 0.0, res.AverageRating)
}
