package apiclient

import (
	"SmartMenza-Backend/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the typed consumer of the SmartMenza HTTP API, used by the mobile
// shell. Every call takes a context so the UI can cancel in-flight requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type AuthResult struct {
	domain.AuthResponse
	Session domain.SessionDescriptor `json:"session"`
}

// APIError is any non-success response from the backend, surfaced to the UI
// as a recoverable failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the session token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		message := errBody.Error
		if message == "" {
			message = errBody.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/Auth/registration", req, &res); err != nil {
		return AuthResult{}, err
	}
	c.token = res.Session.Token
	return res, nil
}

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/Auth/login", req, &res); err != nil {
		return AuthResult{}, err
	}
	c.token = res.Session.Token
	return res, nil
}

func (c *Client) GetMenuByDate(ctx context.Context, date string) (domain.MenuResponse, error) {
	var res domain.MenuResponse
	path := "/api/menu?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return domain.MenuResponse{}, err
	}
	return res, nil
}

func (c *Client) GetMenusByDate(ctx context.Context, date string) ([]domain.MenuResponse, error) {
	var res []domain.MenuResponse
	path := "/api/menu/all?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) ToggleFavorite(ctx context.Context, mealID string) (domain.ToggleFavoriteResponse, error) {
	var res domain.ToggleFavoriteResponse
	req := domain.ToggleFavoriteRequest{MealID: mealID}
	if err := c.do(ctx, http.MethodPost, "/api/favorites/toggle", req, &res); err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}
	return res, nil
}

func (c *Client) ListFavorites(ctx context.Context) ([]domain.FavoriteMealResponse, error) {
	var res []domain.FavoriteMealResponse
	if err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) CreateGoal(ctx context.Context, req domain.CreateGoalRequest) (domain.CreateGoalResponse, error) {
	var res domain.CreateGoalResponse
	if err := c.do(ctx, http.MethodPost, "/api/goals", req, &res); err != nil {
		return domain.CreateGoalResponse{}, err
	}
	return res, nil
}

func (c *Client) GetGoal(ctx context.Context) (domain.GoalResponse, error) {
	var res domain.GoalResponse
	if err := c.do(ctx, http.MethodGet, "/api/goals", nil, &res); err != nil {
		return domain.GoalResponse{}, err
	}
	return res, nil
}

// SubmitRating is an upsert on the backend; callers must not blindly retry on
// transport failure without checking whether the rating landed.
func (c *Client) SubmitRating(ctx context.Context, req domain.SubmitRatingRequest) (domain.RatingCommentResponse, error) {
	var res domain.RatingCommentResponse
	if err := c.do(ctx, http.MethodPost, "/api/ratings", req, &res); err != nil {
		return domain.RatingCommentResponse{}, err
	}
	return res, nil
}

func (c *Client) UpdateRating(ctx context.Context, req domain.SubmitRatingRequest) (domain.RatingCommentResponse, error) {
	var res domain.RatingCommentResponse
	if err := c.do(ctx, http.MethodPut, "/api/ratings", req, &res); err != nil {
		return domain.RatingCommentResponse{}, err
	}
	return res, nil
}

func (c *Client) GetMealRatingSummary(ctx context.Context, mealID string) (domain.MealRatingSummaryResponse, error) {
	var res domain.MealRatingSummaryResponse
	path := "/api/ratings/summary?mealId=" + url.QueryEscape(mealID)
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return domain.MealRatingSummaryResponse{}, err
	}
	return res, nil
}

func (c *Client) GetOverallStats(ctx context.Context, dateFrom, dateTo string) (domain.OverallStatsResponse, error) {
	var res domain.OverallStatsResponse
	query := url.Values{}
	if dateFrom != "" {
		query.Set("dateFrom", dateFrom)
	}
	if dateTo != "" {
		query.Set("dateTo", dateTo)
	}
	path := "/api/stats/overall"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return domain.OverallStatsResponse{}, err
	}
	return res, nil
}
