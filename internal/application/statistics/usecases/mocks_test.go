package usecases

import (
	"context"
	"errors"

	"github.com/orris-inc/statsboard/internal/application/statistics/query"
	"github.com/orris-inc/statsboard/internal/domain/console"
	"github.com/orris-inc/statsboard/internal/infrastructure/format"
	"github.com/orris-inc/statsboard/internal/infrastructure/i18n"
)

var errConsoleDown = errors.New("console down")

type mockSource struct {
	totals  *console.ServerTotal
	tickets *int64
	// failTotals and failTickets make the respective query settle in error.
	failTotals  bool
	failTickets bool
}

func (m *mockSource) FetchServerTotals(ctx context.Context) query.Result[console.ServerTotal] {
	if m.failTotals {
		return query.Result[console.ServerTotal]{Key: query.KeyServerTotal, Err: errConsoleDown, Status: query.StatusError}
	}
	return query.Result[console.ServerTotal]{Key: query.KeyServerTotal, Data: m.totals, Status: query.StatusSuccess}
}

func (m *mockSource) FetchPendingTicketCount(ctx context.Context) query.Result[int64] {
	if m.failTickets {
		return query.Result[int64]{Key: query.KeyTicketWaitReply, Err: errConsoleDown, Status: query.StatusError}
	}
	return query.Result[int64]{Key: query.KeyTicketWaitReply, Data: m.tickets, Status: query.StatusSuccess}
}

type mockInvalidator struct {
	keys   []string
	called bool
	err    error
}

func (m *mockInvalidator) Invalidate(ctx context.Context, keys ...string) error {
	m.called = true
	m.keys = keys
	return m.err
}

func newPresentation() Presentation {
	bundle, err := i18n.NewBundle("en")
	if err != nil {
		panic(err)
	}
	return Presentation{
		Localizer: bundle,
		Formatter: format.NewByteFormatter("iec"),
	}
}

func sampleTotals() *console.ServerTotal {
	return &console.ServerTotal{
		OnlineUserIPs:   12,
		OnlineServers:   3,
		OfflineServers:  1,
		TodayUpload:     1536,
		TodayDownload:   2048,
		MonthlyUpload:   1 << 30,
		MonthlyDownload: 0,
		ServerTrafficRankingToday: []console.ServerTrafficItem{
			{Name: "hk-01", Upload: 100, Download: 200},
			{Name: "jp-02", Upload: 50, Download: 25},
		},
		ServerTrafficRankingYesterday: []console.ServerTrafficItem{
			{Name: "sg-03", Upload: 10, Download: 10},
		},
		UserTrafficRankingToday: []console.UserTrafficItem{
			{UserID: "42", Email: "alice@example.com", Upload: 7, Download: 3},
		},
	}
}

func ptr[T any](v T) *T { return &v }
