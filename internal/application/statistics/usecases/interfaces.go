package usecases

import (
	"context"

	"github.com/orris-inc/statsboard/internal/application/statistics/query"
	"github.com/orris-inc/statsboard/internal/domain/console"
	"github.com/orris-inc/statsboard/internal/domain/dashboard"
)

// StatisticsSource provides the dashboard's console queries.
type StatisticsSource interface {
	FetchServerTotals(ctx context.Context) query.Result[console.ServerTotal]
	FetchPendingTicketCount(ctx context.Context) query.Result[int64]
}

// QueryInvalidator drops cached query results.
type QueryInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// Localizer resolves the translator for a request and reports its language.
type Localizer interface {
	Localize(lang, acceptLanguage string) (dashboard.Translator, string)
}

// Presentation bundles the rendering collaborators shared by the dashboard use cases.
type Presentation struct {
	Localizer Localizer
	Formatter dashboard.Formatter
	TickCount int
}

func (p Presentation) tickCount() int {
	if p.TickCount <= 0 {
		return dashboard.DefaultTickCount
	}
	return p.TickCount
}
