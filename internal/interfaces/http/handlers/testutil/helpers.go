package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/application/statistics/query"
	"github.com/orris-inc/statsboard/internal/application/statistics/usecases"
	"github.com/orris-inc/statsboard/internal/domain/console"
	"github.com/orris-inc/statsboard/internal/infrastructure/format"
	"github.com/orris-inc/statsboard/internal/infrastructure/i18n"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// DoRequest serves one request through engine. A non-nil body is sent as JSON.
func DoRequest(engine http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reader = bytes.NewReader(jsonBytes)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return logger.NewNop()
}

// StubSource serves fixed console data. A nil field answers without data;
// the Fail flags make the query settle in error.
type StubSource struct {
	Totals      *console.ServerTotal
	Tickets     *int64
	FailTotals  bool
	FailTickets bool
}

var _ usecases.StatisticsSource = (*StubSource)(nil)

func (s *StubSource) FetchServerTotals(ctx context.Context) query.Result[console.ServerTotal] {
	if s.FailTotals {
		return query.Result[console.ServerTotal]{Key: query.KeyServerTotal, Err: context.DeadlineExceeded, Status: query.StatusError}
	}
	return query.Result[console.ServerTotal]{Key: query.KeyServerTotal, Data: s.Totals, Status: query.StatusSuccess}
}

func (s *StubSource) FetchPendingTicketCount(ctx context.Context) query.Result[int64] {
	if s.FailTickets {
		return query.Result[int64]{Key: query.KeyTicketWaitReply, Err: context.DeadlineExceeded, Status: query.StatusError}
	}
	return query.Result[int64]{Key: query.KeyTicketWaitReply, Data: s.Tickets, Status: query.StatusSuccess}
}

// StubInvalidator records the keys it was asked to drop.
type StubInvalidator struct {
	Keys  []string
	Calls int
}

func (s *StubInvalidator) Invalidate(ctx context.Context, keys ...string) error {
	s.Calls++
	s.Keys = keys
	return nil
}

// NewPresentation returns the production translator and byte formatter.
func NewPresentation() usecases.Presentation {
	bundle, err := i18n.NewBundle("en")
	if err != nil {
		panic(err)
	}
	return usecases.Presentation{
		Localizer: bundle,
		Formatter: format.NewByteFormatter("iec"),
	}
}

// SampleServerTotal is a small console snapshot with nodes and users on both days.
func SampleServerTotal() *console.ServerTotal {
	return &console.ServerTotal{
		OnlineUserIPs:   21,
		OnlineServers:   4,
		OfflineServers:  2,
		TodayUpload:     3 << 30,
		TodayDownload:   5 << 30,
		MonthlyUpload:   40 << 30,
		MonthlyDownload: 90 << 30,
		ServerTrafficRankingToday: []console.ServerTrafficItem{
			{Name: "hk-01", Upload: 300, Download: 700},
			{Name: "jp-02", Upload: 100, Download: 150},
		},
		ServerTrafficRankingYesterday: []console.ServerTrafficItem{
			{Name: "sg-03", Upload: 40, Download: 60},
		},
		UserTrafficRankingToday: []console.UserTrafficItem{
			{UserID: "42", Email: "alice@example.com", Upload: 10, Download: 30},
		},
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
