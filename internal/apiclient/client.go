package apiclient

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

	"conecta/internal/domain/reviews"
	"conecta/internal/domain/users"
)

// APIError carries the status and message of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status of an *APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

type ReviewInput struct {
	PoiID     string `json:"poiId"`
	PoiName   string `json:"poiName,omitempty"`
	UserEmail string `json:"userEmail"`
	Rating    int    `json:"rating"`
	Review    string `json:"review,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	body := map[string]string{"nome": name, "email": email, "senha": password}
	return c.do(ctx, http.MethodPost, "/api/cadastrar", body, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (users.Public, error) {
	var u users.Public
	body := map[string]string{"email": email, "senha": password}
	err := c.do(ctx, http.MethodPost, "/api/login", body, &u)
	return u, err
}

func (c *Client) SubmitReview(ctx context.Context, in ReviewInput) error {
	return c.do(ctx, http.MethodPost, "/api/avaliar", in, nil)
}

func (c *Client) ListReviews(ctx context.Context, placeID string) ([]reviews.Listing, error) {
	list := []reviews.Listing{}
	err := c.do(ctx, http.MethodGet, "/api/avaliacoes?poiId="+url.QueryEscape(placeID), nil, &list)
	return list, err
}

func (c *Client) ReviewStats(ctx context.Context, placeID string) (reviews.Stats, error) {
	var stats reviews.Stats
	err := c.do(ctx, http.MethodGet, "/api/avaliacoes/resumo?poiId="+url.QueryEscape(placeID), nil, &stats)
	return stats, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &envelope)
		msg := envelope.Error
		if msg == "" {
			msg = envelope.Message
		}
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
