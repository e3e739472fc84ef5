package dashboard

// Translator resolves localized labels by message key.
type Translator interface {
	T(key string) string
}

// Formatter renders byte quantities for display.
type Formatter interface {
	FormatBytes(bytes float64) string
	GBToBytes(gigabytes float64) float64
}

// Message keys shared by the dashboard views.
const (
	MsgStatisticsTitle       = "statisticsTitle"
	MsgOnlineIPCount         = "onlineIPCount"
	MsgOnlineNodeCount       = "onlineNodeCount"
	MsgOfflineNodeCount      = "offlineNodeCount"
	MsgPendingTickets        = "pendingTickets"
	MsgTodayUploadTraffic    = "todayUploadTraffic"
	MsgTodayDownloadTraffic  = "todayDownloadTraffic"
	MsgMonthUploadTraffic    = "monthUploadTraffic"
	MsgMonthDownloadTraffic  = "monthDownloadTraffic"
	MsgTrafficRank           = "trafficRank"
	MsgToday                 = "today"
	MsgYesterday             = "yesterday"
	MsgNodeTraffic           = "nodeTraffic"
	MsgUserTraffic           = "userTraffic"
	MsgNodes                 = "nodes"
	MsgUsers                 = "users"
	MsgSelectTypePlaceholder = "selectTypePlaceholder"
	MsgType                  = "type"
	MsgEmail                 = "email"
	MsgNoData                = "noData"
)
