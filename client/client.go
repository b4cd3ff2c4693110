// Package client submits exported pipeline documents to the execution API
// and polls job status.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jonboulle/clockwork"

	"github.com/ionworks/ionworks-schema/config"
	"github.com/ionworks/ionworks-schema/export"
	"github.com/ionworks/ionworks-schema/schema"
)

var (
	// ErrRequestFailed is returned when the API responds with a non-2xx
	// status. Client errors (4xx) are not retried.
	ErrRequestFailed = errors.New("api request failed")
)

// HTTPClient is the minimal HTTP interface needed by the client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	Logger     *slog.Logger
	HTTPClient HTTPClient
	BaseURL    string
	APIKey     string
	Clock      clockwork.Clock
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	return nil
}

// Client submits pipelines to the execution API.
type Client struct {
	log     *slog.Logger
	http    HTTPClient
	baseURL string
	apiKey  string
	clock   clockwork.Clock
}

// New creates a client from the given config.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Client{
		log:     cfg.Logger,
		http:    cfg.HTTPClient,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		clock:   cfg.Clock,
	}, nil
}

// NewForEnv creates a client configured for the named environment.
// Valid environments: "production", "staging", "local".
func NewForEnv(log *slog.Logger, env string) (*Client, error) {
	apiCfg, err := config.APIConfigForEnv(env)
	if err != nil {
		return nil, err
	}
	return New(Config{Logger: log, BaseURL: apiCfg.BaseURL, APIKey: apiCfg.APIKey})
}

// Job is the API's record of a submitted pipeline.
type Job struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SubmitPipeline validates and exports the pipeline, then posts it to the
// API. Server errors are retried with exponential backoff; client errors
// fail immediately.
func (c *Client) SubmitPipeline(ctx context.Context, p *schema.Pipeline) (*Job, error) {
	doc, err := export.Marshal(p)
	if err != nil {
		return nil, err
	}

	attempt := 0
	job, err := backoff.Retry(ctx, func() (*Job, error) {
		if attempt > 0 {
			c.log.Warn("Failed to submit pipeline, retrying", "attempt", attempt)
		}
		attempt++
		return c.post(ctx, "/v1/pipelines", doc)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()))
	if err != nil {
		return nil, fmt.Errorf("failed to submit pipeline: %w", err)
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = c.clock.Now().UTC()
	}
	c.log.Info("Submitted pipeline", "job_id", job.ID, "status", job.Status)
	return job, nil
}

// JobStatus fetches the current state of a submitted job.
func (c *Client) JobStatus(ctx context.Context, id string) (*Job, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/pipelines/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*Job, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	job, err := c.do(req)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.status >= 400 && apiErr.status < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	return job, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) (*Job, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &apiError{status: resp.StatusCode, body: string(msg)}
	}

	var job Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &job, nil
}

type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrRequestFailed, e.status, e.body)
}

func (e *apiError) Unwrap() error { return ErrRequestFailed }
