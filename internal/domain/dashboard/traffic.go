package dashboard

import (
	"github.com/orris-inc/statsboard/internal/domain/console"
)

// TrafficRow is one chart record. Traffic is upload plus download, in bytes.
// Email is set for user rows only.
type TrafficRow struct {
	Name    string  `json:"name"`
	Traffic int64   `json:"traffic"`
	Email   *string `json:"email,omitempty"`
}

// TrafficWindow holds the rows of one dimension for both days.
type TrafficWindow struct {
	Today     []TrafficRow `json:"today"`
	Yesterday []TrafficRow `json:"yesterday"`
}

// TrafficData is the four ranking arrays indexed by dimension and day.
type TrafficData struct {
	Nodes TrafficWindow `json:"nodes"`
	Users TrafficWindow `json:"users"`
}

// DeriveTrafficData reshapes the ranking lists into chart rows, keeping the
// console's order. A nil snapshot or missing list yields empty slices.
func DeriveTrafficData(st *console.ServerTotal) TrafficData {
	if st == nil {
		st = &console.ServerTotal{}
	}
	return TrafficData{
		Nodes: TrafficWindow{
			Today:     nodeRows(st.ServerTrafficRankingToday),
			Yesterday: nodeRows(st.ServerTrafficRankingYesterday),
		},
		Users: TrafficWindow{
			Today:     userRows(st.UserTrafficRankingToday),
			Yesterday: userRows(st.UserTrafficRankingYesterday),
		},
	}
}

func nodeRows(items []console.ServerTrafficItem) []TrafficRow {
	rows := make([]TrafficRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, TrafficRow{
			Name:    item.Name,
			Traffic: int64(item.Download + item.Upload),
		})
	}
	return rows
}

func userRows(items []console.UserTrafficItem) []TrafficRow {
	rows := make([]TrafficRow, 0, len(items))
	for _, item := range items {
		email := item.Email
		rows = append(rows, TrafficRow{
			Name:    item.UserID.String(),
			Traffic: int64(item.Download + item.Upload),
			Email:   &email,
		})
	}
	return rows
}

// Lookup returns the rows for the selection. The result is never nil.
func (d TrafficData) Lookup(sel Selection) []TrafficRow {
	var window TrafficWindow
	switch sel.DataType {
	case DataTypeNodes:
		window = d.Nodes
	case DataTypeUsers:
		window = d.Users
	default:
		return []TrafficRow{}
	}

	var rows []TrafficRow
	switch sel.TimeFrame {
	case TimeFrameToday:
		rows = window.Today
	case TimeFrameYesterday:
		rows = window.Yesterday
	}
	if rows == nil {
		return []TrafficRow{}
	}
	return rows
}
