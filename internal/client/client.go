package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/joshua-takyi/campus/internal/models"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status         int
	Message        string
	RequiredFields []string
	Errors         []string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api error %d: %s", e.Status, e.Message)
	if len(e.RequiredFields) > 0 {
		fmt.Fprintf(&b, " (required: %s)", strings.Join(e.RequiredFields, ", "))
	}
	if len(e.Errors) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Errors, "; "))
	}
	return b.String()
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLanguage sets Accept-Language on every request.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// New builds a client for the API mounted at baseURL, e.g.
// http://localhost:8080/api.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ListEvents(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListEventsByCreator(ctx context.Context, userID string) ([]*models.Event, error) {
	var events []*models.Event
	if err := c.do(ctx, http.MethodGet, "/events/user/"+url.PathEscape(userID), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, in *models.EventInput) (*models.EventResponse, error) {
	var resp models.EventResponse
	if err := c.do(ctx, http.MethodPost, "/events", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in *models.EventInput) (*models.EventResponse, error) {
	var resp models.EventResponse
	if err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id), in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) (*models.EventResponse, error) {
	var resp models.EventResponse
	if err := c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	var profile models.UserProfile
	creds := &models.Credentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/users/login", creds, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) Register(ctx context.Context, email, password string) (*models.UserProfile, error) {
	var profile models.UserProfile
	creds := &models.Credentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/users", creds, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var payload models.ErrorResponse
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
			apiErr.Message = payload.Message
			apiErr.RequiredFields = payload.RequiredFields
			apiErr.Errors = payload.Errors
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
