package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/recipe-manager/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) CurrentUser() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	u := *h.user
	return &u
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.startSession(resp.Body())
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.startSession(resp.Body())
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")

	// the local session is gone regardless of what the server said
	h.clearSession()

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.User{}, err
	}

	var ur models.UserResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}
	return ur.User, nil
}

func (h *httpServerAdapter) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(query).
		Get("/api/recipes/")
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	var lr models.RecipeListResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list recipes response: %w", err)
	}
	return lr.Recipes, nil
}

func (h *httpServerAdapter) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	resp, err := h.authedRequest(ctx).Get("/api/recipes/" + url.PathEscape(id))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Recipe{}, err
	}

	var recipe models.Recipe
	if err = json.Unmarshal(resp.Body(), &recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("decode recipe response: %w", err)
	}
	return recipe, nil
}

func (h *httpServerAdapter) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(recipe).
		Post("/api/recipes/")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Recipe{}, err
	}

	var created models.Recipe
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Recipe{}, fmt.Errorf("decode created recipe: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateRecipe(ctx context.Context, id string, patch models.RecipeUpdate) (models.Recipe, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Put("/api/recipes/" + url.PathEscape(id))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Recipe{}, err
	}

	var updated models.Recipe
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Recipe{}, fmt.Errorf("decode updated recipe: %w", err)
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteRecipe(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/recipes/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// checkResponse maps resp to a sentinel error and drops the session when the
// server rejected our credentials.
func (h *httpServerAdapter) checkResponse(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) {
		h.clearSession()
	}
	return err
}

func (h *httpServerAdapter) startSession(body []byte) (models.User, error) {
	var ar models.AuthResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return models.User{}, fmt.Errorf("decode auth response: %w", err)
	}
	if ar.Token == "" {
		return models.User{}, errors.New("auth response carries no token")
	}

	h.mu.Lock()
	h.token = ar.Token
	user := ar.User
	h.user = &user
	h.mu.Unlock()

	return ar.User, nil
}

func (h *httpServerAdapter) clearSession() {
	h.mu.Lock()
	h.token = ""
	h.user = nil
	h.mu.Unlock()
}
