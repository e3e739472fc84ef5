// Package consoleapi is the HTTP client for the admin console API.
package consoleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/orris-inc/statsboard/internal/domain/console"
	"github.com/orris-inc/statsboard/internal/shared/errors"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultRetryBase = time.Second
	defaultRetryCap  = 30 * time.Second
	maxErrorBody     = 512
)

// Options configures the console client.
type Options struct {
	BaseURL         string
	ServerTotalPath string
	TicketPath      string
	// Token is sent as the Authorization header when the caller forwarded none.
	Token      string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
	RetryCap   time.Duration
	HTTPClient *http.Client
}

// Client reads console snapshots over HTTP.
type Client struct {
	baseURL         string
	serverTotalPath string
	ticketPath      string
	token           string
	maxRetries      uint64
	retryBase       time.Duration
	retryCap        time.Duration
	http            *http.Client
	logger          logger.Interface
}

var _ console.Gateway = (*Client)(nil)

// NewClient creates a console client.
func NewClient(opts Options, log logger.Interface) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	retryBase := opts.RetryBase
	if retryBase <= 0 {
		retryBase = defaultRetryBase
	}
	retryCap := opts.RetryCap
	if retryCap <= 0 {
		retryCap = defaultRetryCap
	}
	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		baseURL:         strings.TrimRight(opts.BaseURL, "/"),
		serverTotalPath: opts.ServerTotalPath,
		ticketPath:      opts.TicketPath,
		token:           opts.Token,
		maxRetries:      uint64(maxRetries),
		retryBase:       retryBase,
		retryCap:        retryCap,
		http:            httpClient,
		logger:          log,
	}
}

// GetServerTotal fetches the server/network totals snapshot.
func (c *Client) GetServerTotal(ctx context.Context) (*console.ServerTotal, error) {
	var st console.ServerTotal
	ok, err := c.getData(ctx, c.serverTotalPath, &st)
	if err != nil || !ok {
		return nil, err
	}
	return &st, nil
}

// GetTicketWaitReply fetches the number of tickets waiting for a reply.
func (c *Client) GetTicketWaitReply(ctx context.Context) (*console.TicketTotal, error) {
	var tt console.TicketTotal
	ok, err := c.getData(ctx, c.ticketPath, &tt)
	if err != nil || !ok {
		return nil, err
	}
	return &tt, nil
}

// envelope is the console's response wrapper.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// getData GETs path and decodes the envelope's data into out. It reports
// false when the console answered successfully without data.
func (c *Client) getData(ctx context.Context, path string, out any) (bool, error) {
	var env envelope

	attempt := 0
	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		attempt++
		e, err := c.do(ctx, path)
		if err != nil {
			if isRetryable(err) {
				c.logger.Debugw("console request failed, retrying",
					"path", path,
					"attempt", attempt,
					"error", err,
				)
				return retry.RetryableError(err)
			}
			return err
		}
		env = e
		return nil
	})
	if err != nil {
		return false, toUpstreamError(err)
	}

	if env.Code != 0 && env.Code != http.StatusOK {
		return false, errors.NewUpstreamError("console returned an error", fmt.Sprintf("code %d: %s", env.Code, env.Msg))
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.NewUpstreamError("failed to decode console data", err.Error())
	}
	return true, nil
}

func (c *Client) do(ctx context.Context, path string) (envelope, error) {
	var env envelope

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return env, fmt.Errorf("failed to build console request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if auth := c.authorization(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return env, &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return env, &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return env, errors.NewUpstreamError("failed to decode console response", err.Error())
	}
	return env, nil
}

func (c *Client) authorization(ctx context.Context) string {
	if auth := AuthorizationFromContext(ctx); auth != "" {
		return auth
	}
	return c.token
}

func (c *Client) backoff() retry.Backoff {
	b := retry.NewExponential(c.retryBase)
	b = retry.WithCappedDuration(c.retryCap, b)
	return retry.WithMaxRetries(c.maxRetries, b)
}
