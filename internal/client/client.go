// Package client talks to the lunch planner API on behalf of one caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lunch-planner/internal/config"
	"lunch-planner/internal/weekly"
)

const maxErrorBody = 4 << 10

// APIError is returned for any non-2xx answer.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d, body: %s", e.Status, e.Body)
}

// Client is an interface for the lunch planner API client.
type Client interface {
	FetchLunches(ctx context.Context, from, to weekly.Date) ([]weekly.RawOption, error)
	FetchSelections(ctx context.Context, userID string) ([]weekly.RawSelection, error)
	CreateSelection(ctx context.Context, userID, lunchID string) (string, error)
	UpdateSelection(ctx context.Context, userID, selectionID, lunchID string) error
	DeleteSelection(ctx context.Context, userID, selectionID string) error
}

// apiClient is the concrete implementation of the API client.
type apiClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new API client from the API_BASE_URL and API_TOKEN settings.
func NewClient(cfg *config.Config) Client {
	return &apiClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.APIBaseURL,
		token:      cfg.APIToken,
	}
}

type selectionBody struct {
	LunchID string `json:"lunchId"`
}

type selectionResponse struct {
	UserLunchID string `json:"userLunchId"`
}

// FetchLunches fetches the menu between from and to inclusive.
func (c *apiClient) FetchLunches(ctx context.Context, from, to weekly.Date) ([]weekly.RawOption, error) {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("from", from.String())
	}
	if !to.IsZero() {
		q.Set("to", to.String())
	}
	path := "/api/lunches"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var lunches []weekly.RawOption
	if err := c.do(ctx, http.MethodGet, path, nil, &lunches); err != nil {
		return nil, fmt.Errorf("failed to fetch lunches: %w", err)
	}
	return lunches, nil
}

// FetchSelections fetches every lunch selection of userID.
func (c *apiClient) FetchSelections(ctx context.Context, userID string) ([]weekly.RawSelection, error) {
	var selections []weekly.RawSelection
	if err := c.do(ctx, http.MethodGet, userPath(userID), nil, &selections); err != nil {
		return nil, fmt.Errorf("failed to fetch selections: %w", err)
	}
	return selections, nil
}

// CreateSelection records a new selection and returns its id.
func (c *apiClient) CreateSelection(ctx context.Context, userID, lunchID string) (string, error) {
	var resp selectionResponse
	if err := c.do(ctx, http.MethodPost, userPath(userID), selectionBody{LunchID: lunchID}, &resp); err != nil {
		return "", fmt.Errorf("failed to create selection: %w", err)
	}
	if resp.UserLunchID == "" {
		return "", fmt.Errorf("no userLunchId returned from api")
	}
	return resp.UserLunchID, nil
}

// UpdateSelection points an existing selection at another lunch.
func (c *apiClient) UpdateSelection(ctx context.Context, userID, selectionID, lunchID string) error {
	path := userPath(userID) + "/" + url.PathEscape(selectionID)
	if err := c.do(ctx, http.MethodPut, path, selectionBody{LunchID: lunchID}, nil); err != nil {
		return fmt.Errorf("failed to update selection: %w", err)
	}
	return nil
}

// DeleteSelection removes a selection.
func (c *apiClient) DeleteSelection(ctx context.Context, userID, selectionID string) error {
	path := userPath(userID) + "/" + url.PathEscape(selectionID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete selection: %w", err)
	}
	return nil
}

func userPath(userID string) string {
	return "/api/users/" + url.PathEscape(userID) + "/lunches"
}

// do sends one request and decodes a JSON answer into out when out is not nil.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
