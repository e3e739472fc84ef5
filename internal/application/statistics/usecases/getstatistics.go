package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/orris-inc/statsboard/internal/application/statistics/dto"
	"github.com/orris-inc/statsboard/internal/application/statistics/query"
	"github.com/orris-inc/statsboard/internal/domain/console"
	"github.com/orris-inc/statsboard/internal/domain/dashboard"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

// GetStatisticsQuery selects the ranking view and the display language.
type GetStatisticsQuery struct {
	Selection      dashboard.Selection
	Lang           string
	AcceptLanguage string
}

// GetStatisticsUseCase assembles the full statistics dashboard.
type GetStatisticsUseCase struct {
	source       StatisticsSource
	presentation Presentation
	logger       logger.Interface
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase.
func NewGetStatisticsUseCase(
	source StatisticsSource,
	presentation Presentation,
	log logger.Interface,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		source:       source,
		presentation: presentation,
		logger:       log,
	}
}

// Execute fetches both console queries concurrently and renders the dashboard.
// A failed query renders as absent data; it never fails the request.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, q GetStatisticsQuery) (*dto.StatisticsResponse, error) {
	uc.logger.Debugw("building statistics dashboard",
		"data_type", q.Selection.DataType,
		"time_frame", q.Selection.TimeFrame,
	)

	var (
		totals  query.Result[console.ServerTotal]
		tickets query.Result[int64]
	)

	// Each goroutine writes its own result; failures are carried in the result.
	var g errgroup.Group
	g.Go(func() error {
		totals = uc.source.FetchServerTotals(ctx)
		return nil
	})
	g.Go(func() error {
		tickets = uc.source.FetchPendingTicketCount(ctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tr, lang := uc.presentation.Localizer.Localize(q.Lang, q.AcceptLanguage)
	traffic := dashboard.DeriveTrafficData(totals.Data)

	return &dto.StatisticsResponse{
		Lang:    lang,
		Title:   tr.T(dashboard.MsgStatisticsTitle),
		Tiles:   dashboard.BuildMetricTiles(totals.Data, tickets.Data, tr, uc.presentation.Formatter),
		Traffic: traffic,
		Chart:   dashboard.BuildTrafficChart(traffic, q.Selection, tr, uc.presentation.Formatter, uc.presentation.tickCount()),
		Queries: []dto.QueryStatusDTO{
			toQueryStatusDTO(totals.Key, totals.Status, totals.FromCache),
			toQueryStatusDTO(tickets.Key, tickets.Status, tickets.FromCache),
		},
	}, nil
}

func toQueryStatusDTO(key string, status query.Status, fromCache bool) dto.QueryStatusDTO {
	return dto.QueryStatusDTO{
		Key:       key,
		Status:    string(status),
		FromCache: fromCache,
	}
}
