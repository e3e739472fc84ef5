// Package console holds the read-only snapshots served by the admin console API.
package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ServerTotal is the console's server/network totals snapshot. Traffic values are bytes.
type ServerTotal struct {
	OnlineUserIPs   int64     `json:"online_user_ips"`
	OnlineServers   int64     `json:"online_servers"`
	OfflineServers  int64     `json:"offline_servers"`
	TodayUpload     ByteCount `json:"upload_traffic_today"`
	TodayDownload   ByteCount `json:"download_traffic_today"`
	MonthlyUpload   ByteCount `json:"upload_traffic_month"`
	MonthlyDownload ByteCount `json:"download_traffic_month"`

	ServerTrafficRankingToday     []ServerTrafficItem `json:"server_traffic_ranking_today"`
	ServerTrafficRankingYesterday []ServerTrafficItem `json:"server_traffic_ranking_yesterday"`
	UserTrafficRankingToday       []UserTrafficItem   `json:"user_traffic_ranking_today"`
	UserTrafficRankingYesterday   []UserTrafficItem   `json:"user_traffic_ranking_yesterday"`
}

// ServerTrafficItem is one node in a traffic ranking list.
type ServerTrafficItem struct {
	ServerID int64     `json:"server_id,omitempty"`
	Name     string    `json:"name"`
	Upload   ByteCount `json:"upload"`
	Download ByteCount `json:"download"`
}

// UserTrafficItem is one user in a traffic ranking list.
type UserTrafficItem struct {
	UserID   UserID    `json:"user_id"`
	Email    string    `json:"email"`
	Upload   ByteCount `json:"upload"`
	Download ByteCount `json:"download"`
}

// TicketTotal is the number of tickets waiting for an admin reply.
type TicketTotal struct {
	Count int64 `json:"count"`
}

// UserID accepts both numeric and string identifiers from the console.
type UserID string

func (id UserID) String() string {
	return string(id)
}

func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user_id must be a number or string: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = UserID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = UserID(n.String())
	return nil
}

func (id UserID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// ByteCount is a traffic volume in bytes. The console normally sends integers;
// fractional or quoted numbers are truncated toward zero so one odd field
// cannot fail the whole snapshot.
type ByteCount int64

func (b *ByteCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	n := json.Number(data)
	if i, err := n.Int64(); err == nil {
		*b = ByteCount(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) {
		return fmt.Errorf("traffic value must be a number: %q", data)
	}
	switch {
	case f >= math.MaxInt64:
		*b = math.MaxInt64
	case f <= math.MinInt64:
		*b = math.MinInt64
	default:
		*b = ByteCount(math.Trunc(f))
	}
	return nil
}
