package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TransportError carries the status code and raw body of a non-2xx
// response. Callers extract the envelope message from Body themselves.
type TransportError struct {
	StatusCode int
	Body       []byte
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

// Config holds story API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the story backend. All methods are one request,
// one decoded response; only idempotent GETs are retried.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new story API client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "api"),
	}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, name, email, password string) (*Envelope, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("password", password)

	var resp Envelope
	if err := c.postForm(ctx, "/register", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	var resp LoginResponse
	if err := c.postForm(ctx, "/login", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stories fetches one feed page.
func (c *Client) Stories(ctx context.Context, token string, page, size int) (*StoriesResponse, error) {
	endpoint := fmt.Sprintf("%s/stories?page=%d&size=%d", c.baseURL, page, size)
	return c.getStories(ctx, token, endpoint)
}

// FetchPage fetches one feed page and unwraps the envelope: a logical
// backend failure (error=true) is surfaced as an error here because the
// cache mediator has no message channel of its own.
func (c *Client) FetchPage(ctx context.Context, token string, page, size int) ([]StoryItem, error) {
	resp, err := c.Stories(ctx, token, page, size)
	if err != nil {
		return nil, err
	}
	if resp.Error {
		return nil, fmt.Errorf("backend error: %s", resp.Message)
	}
	return resp.ListStory, nil
}

// StoriesWithLocation fetches the geo-tagged story set.
func (c *Client) StoriesWithLocation(ctx context.Context, token string) (*StoriesResponse, error) {
	endpoint := c.baseURL + "/stories?location=1"
	return c.getStories(ctx, token, endpoint)
}

// PostStory uploads a photo with its description and optional coordinates.
func (c *Client) PostStory(ctx context.Context, token string, photo []byte, filename, description string, lat, lon *float64) (*Envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return nil, fmt.Errorf("create photo part: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return nil, fmt.Errorf("write photo part: %w", err)
	}
	if err := mw.WriteField("description", description); err != nil {
		return nil, fmt.Errorf("write description part: %w", err)
	}
	if lat != nil {
		if err := mw.WriteField("lat", strconv.FormatFloat(*lat, 'f', -1, 64)); err != nil {
			return nil, fmt.Errorf("write lat part: %w", err)
		}
	}
	if lon != nil {
		if err := mw.WriteField("lon", strconv.FormatFloat(*lon, 'f', -1, 64)); err != nil {
			return nil, fmt.Errorf("write lon part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stories", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	var resp Envelope
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) getStories(ctx context.Context, token, endpoint string) (*StoriesResponse, error) {
	var resp StoriesResponse
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.get(ctx, token, endpoint, &resp)
		if err == nil {
			return &resp, nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) get(ctx context.Context, token, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", "StoryFeed/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return &TransportError{StatusCode: resp.StatusCode, Body: body}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
