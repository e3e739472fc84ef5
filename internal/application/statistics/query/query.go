// Package query runs keyed, cached and deduplicated fetches against the console.
package query

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/orris-inc/statsboard/internal/infrastructure/cache"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

// Query keys of the dashboard fetches.
const (
	KeyServerTotal     = "queryServerTotalData"
	KeyTicketWaitReply = "queryTicketWaitReply"
	DefaultStaleTime   = 30 * time.Second
	nullPayload        = "null"
)

// Keys lists every query key the dashboard issues.
var Keys = []string{KeyServerTotal, KeyTicketWaitReply}

// IsKnownKey reports whether key names a dashboard query.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Status is the settled state of a query.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is what a consumer sees of one query. Data is nil both on failure
// and when the console answered without data.
type Result[T any] struct {
	Key       string
	Data      *T
	Err       error
	Status    Status
	FromCache bool
}

// IsSuccess reports whether the query settled without error.
func (r Result[T]) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// Client caches query results for a stale window and collapses concurrent
// fetches of the same key into one upstream call.
type Client struct {
	cache     cache.QueryCache
	group     singleflight.Group
	staleTime time.Duration
	logger    logger.Interface
}

// NewClient creates a query client. A non-positive staleTime disables caching.
func NewClient(c cache.QueryCache, staleTime time.Duration, log logger.Interface) *Client {
	return &Client{
		cache:     c,
		staleTime: staleTime,
		logger:    log,
	}
}

type flightResult struct {
	payload []byte
	cached  bool
}

// Fetch returns the cached result for key or runs fn once for all concurrent
// callers. A caller whose ctx ends stops waiting; the shared fetch continues
// for the others. Errors are never cached.
func Fetch[T any](ctx context.Context, c *Client, key string, fn func(ctx context.Context) (*T, error)) Result[T] {
	if payload, ok := c.lookup(ctx, key); ok {
		return decode[T](c, key, payload, true)
	}

	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)

		// Another flight may have filled the cache while this one queued.
		if payload, ok := c.lookup(fetchCtx, key); ok {
			return flightResult{payload: payload, cached: true}, nil
		}

		data, err := fn(fetchCtx)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query %s: %w", key, err)
		}
		c.store(fetchCtx, key, payload)
		return flightResult{payload: payload}, nil
	})

	select {
	case <-ctx.Done():
		return failed[T](key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			c.logger.Warnw("query failed", "key", key, "error", res.Err)
			return failed[T](key, res.Err)
		}
		fr := res.Val.(flightResult)
		return decode[T](c, key, fr.payload, fr.cached)
	}
}

// Invalidate drops the cached results of keys, or of every query when no key
// is given.
func (c *Client) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		keys = Keys
		if err := c.cache.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear query cache: %w", err)
		}
	} else if err := c.cache.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to delete cached queries: %w", err)
	}

	for _, key := range keys {
		c.group.Forget(key)
	}
	c.logger.Infow("query cache invalidated", "keys", keys)
	return nil
}

func (c *Client) lookup(ctx context.Context, key string) ([]byte, bool) {
	if c.staleTime <= 0 {
		return nil, false
	}
	payload, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warnw("query cache read failed", "key", key, "error", err)
		return nil, false
	}
	return payload, ok
}

func (c *Client) store(ctx context.Context, key string, payload []byte) {
	if c.staleTime <= 0 {
		return
	}
	if err := c.cache.Set(ctx, key, payload, c.staleTime); err != nil {
		c.logger.Warnw("query cache write failed", "key", key, "error", err)
	}
}

func decode[T any](c *Client, key string, payload []byte, fromCache bool) Result[T] {
	res := Result[T]{Key: key, Status: StatusSuccess, FromCache: fromCache}
	if bytes.Equal(bytes.TrimSpace(payload), []byte(nullPayload)) {
		return res
	}

	var data T
	if err := json.Unmarshal(payload, &data); err != nil {
		c.logger.Warnw("query payload undecodable", "key", key, "error", err)
		return failed[T](key, fmt.Errorf("failed to decode query %s: %w", key, err))
	}
	res.Data = &data
	return res
}

func failed[T any](key string, err error) Result[T] {
	return Result[T]{Key: key, Err: err, Status: StatusError}
}
