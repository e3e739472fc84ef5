// Package statistics serves the console data behind the statistics dashboard.
package statistics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/orris-inc/statsboard/internal/application/statistics/query"
	"github.com/orris-inc/statsboard/internal/domain/console"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

// QueryService runs the dashboard's two console queries through the query client.
type QueryService struct {
	gateway console.Gateway
	client  *query.Client
	logger  logger.Interface
}

// NewQueryService creates a new QueryService.
func NewQueryService(gateway console.Gateway, client *query.Client, log logger.Interface) *QueryService {
	return &QueryService{
		gateway: gateway,
		client:  client,
		logger:  log,
	}
}

// FetchServerTotals returns the server totals snapshot.
func (s *QueryService) FetchServerTotals(ctx context.Context) query.Result[console.ServerTotal] {
	return query.Fetch(ctx, s.client, query.KeyServerTotal, s.gateway.GetServerTotal)
}

// FetchPendingTicketCount returns the number of tickets waiting for a reply.
// Data is nil when the console reported no count.
func (s *QueryService) FetchPendingTicketCount(ctx context.Context) query.Result[int64] {
	res := query.Fetch(ctx, s.client, query.KeyTicketWaitReply, s.gateway.GetTicketWaitReply)

	out := query.Result[int64]{
		Key:       res.Key,
		Err:       res.Err,
		Status:    res.Status,
		FromCache: res.FromCache,
	}
	if res.Data != nil {
		count := res.Data.Count
		out.Data = &count
	}
	return out
}

// Invalidate drops cached query results; no keys means all of them.
func (s *QueryService) Invalidate(ctx context.Context, keys ...string) error {
	return s.client.Invalidate(ctx, keys...)
}

// Prefetch warms the cache with both queries.
func (s *QueryService) Prefetch(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		if res := s.FetchServerTotals(ctx); !res.IsSuccess() {
			s.logger.Warnw("prefetch failed", "key", res.Key, "error", res.Err)
		}
		return nil
	})
	g.Go(func() error {
		if res := s.FetchPendingTicketCount(ctx); !res.IsSuccess() {
			s.logger.Warnw("prefetch failed", "key", res.Key, "error", res.Err)
		}
		return nil
	})
	_ = g.Wait()
	s.logger.Infow("dashboard queries prefetched")
}
