package usecases

import (
	"context"

	"github.com/orris-inc/statsboard/internal/application/statistics/dto"
	"github.com/orris-inc/statsboard/internal/domain/dashboard"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

// GetTrafficRankingQuery selects the ranking view and the display language.
type GetTrafficRankingQuery struct {
	Selection      dashboard.Selection
	Lang           string
	AcceptLanguage string
}

// GetTrafficRankingUseCase renders only the traffic ranking card, so a
// selection change does not rebuild the tiles.
type GetTrafficRankingUseCase struct {
	source       StatisticsSource
	presentation Presentation
	logger       logger.Interface
}

// NewGetTrafficRankingUseCase creates a new GetTrafficRankingUseCase.
func NewGetTrafficRankingUseCase(
	source StatisticsSource,
	presentation Presentation,
	log logger.Interface,
) *GetTrafficRankingUseCase {
	return &GetTrafficRankingUseCase{
		source:       source,
		presentation: presentation,
		logger:       log,
	}
}

// Execute builds the ranking chart for the selection.
func (uc *GetTrafficRankingUseCase) Execute(ctx context.Context, q GetTrafficRankingQuery) (*dto.TrafficRankingResponse, error) {
	totals := uc.source.FetchServerTotals(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tr, lang := uc.presentation.Localizer.Localize(q.Lang, q.AcceptLanguage)
	traffic := dashboard.DeriveTrafficData(totals.Data)

	return &dto.TrafficRankingResponse{
		Lang:  lang,
		Chart: dashboard.BuildTrafficChart(traffic, q.Selection, tr, uc.presentation.Formatter, uc.presentation.tickCount()),
	}, nil
}
