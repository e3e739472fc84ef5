package dashboard

import (
	"strconv"

	"github.com/orris-inc/statsboard/internal/domain/console"
)

const (
	RouteServers = "/dashboard/server"
	RouteTickets = "/dashboard/ticket"
)

// Tile is one metric card. Tiles without Href are not links.
type Tile struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Href  string `json:"href,omitempty"`
}

// Clickable reports whether the tile navigates somewhere.
func (t Tile) Clickable() bool {
	return t.Href != ""
}

// BuildMetricTiles returns the eight fixed metric tiles. Absent inputs render as zero.
func BuildMetricTiles(st *console.ServerTotal, pendingTickets *int64, tr Translator, f Formatter) []Tile {
	if st == nil {
		st = &console.ServerTotal{}
	}
	var tickets int64
	if pendingTickets != nil {
		tickets = *pendingTickets
	}

	count := func(v int64) string { return strconv.FormatInt(v, 10) }
	bytes := func(v console.ByteCount) string { return f.FormatBytes(float64(v)) }

	tiles := []Tile{
		{Key: MsgOnlineIPCount, Value: count(st.OnlineUserIPs), Icon: "uil:users-alt", Href: RouteServers},
		{Key: MsgOnlineNodeCount, Value: count(st.OnlineServers), Icon: "uil:server-network", Href: RouteServers},
		{Key: MsgOfflineNodeCount, Value: count(st.OfflineServers), Icon: "uil:server-network-alt", Href: RouteServers},
		{Key: MsgPendingTickets, Value: count(tickets), Icon: "uil:clipboard-notes", Href: RouteTickets},
		{Key: MsgTodayUploadTraffic, Value: bytes(st.TodayUpload), Icon: "uil:arrow-up"},
		{Key: MsgTodayDownloadTraffic, Value: bytes(st.TodayDownload), Icon: "uil:arrow-down"},
		{Key: MsgMonthUploadTraffic, Value: bytes(st.MonthlyUpload), Icon: "uil:cloud-upload"},
		{Key: MsgMonthDownloadTraffic, Value: bytes(st.MonthlyDownload), Icon: "uil:cloud-download"},
	}
	for i := range tiles {
		tiles[i].Title = tr.T(tiles[i].Key)
	}
	return tiles
}
