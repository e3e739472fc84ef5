package consoleapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/statsboard/internal/shared/errors"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

const (
	serverPath = "/v1/admin/console/server"
	ticketPath = "/v1/admin/console/ticket"
)

func newTestClient(t *testing.T, handler http.Handler, mutate ...func(*Options)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts := Options{
		BaseURL:         srv.URL + "/",
		ServerTotalPath: serverPath,
		TicketPath:      ticketPath,
		MaxRetries:      0,
		RetryBase:       time.Millisecond,
		RetryCap:        5 * time.Millisecond,
	}
	for _, m := range mutate {
		m(&opts)
	}
	return NewClient(opts, logger.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestGetServerTotal_Success(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, serverPath, r.URL.Path)
		writeJSON(w, http.StatusOK, `{"code":200,"msg":"","data":{
			"online_user_ips": 3,
			"online_servers": 2,
			"server_traffic_ranking_today": [{"name":"sg-1","upload":5,"download":6}],
			"user_traffic_ranking_today": [{"user_id": 17, "email":"bob@example.com","upload":1,"download":1}]
		}}`)
	}))

	st, err := client.GetServerTotal(context.Background())

	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, int64(3), st.OnlineUserIPs)
	assert.Equal(t, int64(2), st.OnlineServers)
	require.Len(t, st.ServerTrafficRankingToday, 1)
	assert.Equal(t, "17", st.UserTrafficRankingToday[0].UserID.String())
}

func TestGetServerTotal_StringsPassThrough(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"code":0,"data":{
			"server_traffic_ranking_today": [{"name":"x<y","upload":1,"download":1}, {"name":"  jp-01 & co  ","upload":1,"download":1}],
			"user_traffic_ranking_today": [{"user_id":"5","email":"<b>eve</b>@example.com","upload":1,"download":1}]
		}}`)
	}))

	st, err := client.GetServerTotal(context.Background())

	require.NoError(t, err)
	require.Len(t, st.ServerTrafficRankingToday, 2)
	assert.Equal(t, "x<y", st.ServerTrafficRankingToday[0].Name)
	assert.Equal(t, "  jp-01 & co  ", st.ServerTrafficRankingToday[1].Name)
	assert.Equal(t, "<b>eve</b>@example.com", st.UserTrafficRankingToday[0].Email)
}

func TestGetTicketWaitReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *int64
	}{
		{"count", `{"code":200,"data":{"count":4}}`, ptr(int64(4))},
		{"zero code means success", `{"code":0,"data":{"count":0}}`, ptr(int64(0))},
		{"null data", `{"code":200,"data":null}`, nil},
		{"missing data", `{"code":200}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, ticketPath, r.URL.Path)
				writeJSON(w, http.StatusOK, tt.body)
			}))

			tt2, err := client.GetTicketWaitReply(context.Background())

			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, tt2)
				return
			}
			require.NotNil(t, tt2)
			assert.Equal(t, *tt.want, tt2.Count)
		})
	}
}

func TestGetData_EnvelopeErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{"code":40002,"msg":"permission denied"}`)
	}), func(o *Options) { o.MaxRetries = 3 })

	st, err := client.GetServerTotal(context.Background())

	assert.Nil(t, st)
	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
	assert.Contains(t, errors.GetAppError(err).Details, "permission denied")
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetData_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(w, http.StatusServiceUnavailable, `upstream busy`)
			return
		}
		writeJSON(w, http.StatusOK, `{"code":200,"data":{"count":2}}`)
	}), func(o *Options) { o.MaxRetries = 3 })

	tt, err := client.GetTicketWaitReply(context.Background())

	require.NoError(t, err)
	require.NotNil(t, tt)
	assert.Equal(t, int64(2), tt.Count)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetData_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadGateway, `bad gateway`)
	}), func(o *Options) { o.MaxRetries = 2 })

	_, err := client.GetServerTotal(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetData_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusUnauthorized, `{"code":401,"msg":"unauthorized"}`)
	}), func(o *Options) { o.MaxRetries = 3 })

	_, err := client.GetServerTotal(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetData_MalformedJSON(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"code":200,"data":{"online_servers":"many"}}`)
	}))

	_, err := client.GetServerTotal(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
}

func TestAuthorizationHeader(t *testing.T) {
	var got atomic.Value
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"code":200,"data":{"count":1}}`)
	})
	client := newTestClient(t, handler, func(o *Options) { o.Token = "static-token" })

	_, err := client.GetTicketWaitReply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static-token", got.Load())

	ctx := WithAuthorization(context.Background(), "Bearer admin-session")
	_, err = client.GetTicketWaitReply(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer admin-session", got.Load())
}

func TestGetData_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Options{BaseURL: url, ServerTotalPath: serverPath}, logger.NewNop())

	_, err := client.GetServerTotal(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
}

func ptr[T any](v T) *T { return &v }
