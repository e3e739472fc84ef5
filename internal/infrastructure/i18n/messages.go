package i18n

import "github.com/orris-inc/statsboard/internal/domain/dashboard"

var messagesEN = map[string]string{
	dashboard.MsgStatisticsTitle:       "Statistics",
	dashboard.MsgOnlineIPCount:         "Online IPs",
	dashboard.MsgOnlineNodeCount:       "Online Nodes",
	dashboard.MsgOfflineNodeCount:      "Offline Nodes",
	dashboard.MsgPendingTickets:        "Pending Tickets",
	dashboard.MsgTodayUploadTraffic:    "Today Upload Traffic",
	dashboard.MsgTodayDownloadTraffic:  "Today Download Traffic",
	dashboard.MsgMonthUploadTraffic:    "Month Upload Traffic",
	dashboard.MsgMonthDownloadTraffic:  "Month Download Traffic",
	dashboard.MsgTrafficRank:           "Traffic Ranking",
	dashboard.MsgToday:                 "Today",
	dashboard.MsgYesterday:             "Yesterday",
	dashboard.MsgNodeTraffic:           "Node Traffic",
	dashboard.MsgUserTraffic:           "User Traffic",
	dashboard.MsgNodes:                 "Nodes",
	dashboard.MsgUsers:                 "Users",
	dashboard.MsgSelectTypePlaceholder: "Select type",
	dashboard.MsgType:                  "Type",
	dashboard.MsgEmail:                 "Email",
	dashboard.MsgNoData:                "No data",
}

var messagesZH = map[string]string{
	dashboard.MsgStatisticsTitle:       "统计",
	dashboard.MsgOnlineIPCount:         "在线 IP 数",
	dashboard.MsgOnlineNodeCount:       "在线节点数",
	dashboard.MsgOfflineNodeCount:      "离线节点数",
	dashboard.MsgPendingTickets:        "待处理工单",
	dashboard.MsgTodayUploadTraffic:    "今日上传流量",
	dashboard.MsgTodayDownloadTraffic:  "今日下载流量",
	dashboard.MsgMonthUploadTraffic:    "本月上传流量",
	dashboard.MsgMonthDownloadTraffic:  "本月下载流量",
	dashboard.MsgTrafficRank:           "流量排行",
	dashboard.MsgToday:                 "今日",
	dashboard.MsgYesterday:             "昨日",
	dashboard.MsgNodeTraffic:           "节点流量",
	dashboard.MsgUserTraffic:           "用户流量",
	dashboard.MsgNodes:                 "节点",
	dashboard.MsgUsers:                 "用户",
	dashboard.MsgSelectTypePlaceholder: "选择类型",
	dashboard.MsgType:                  "类型",
	dashboard.MsgEmail:                 "邮箱",
	dashboard.MsgNoData:                "暂无数据",
}
