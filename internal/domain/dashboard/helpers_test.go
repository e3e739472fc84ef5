package dashboard

import (
	"fmt"

	"github.com/orris-inc/statsboard/internal/domain/console"
)

// keyTranslator echoes message keys so assertions can match on them.
type keyTranslator struct{}

func (keyTranslator) T(key string) string { return key }

// plainFormatter renders raw byte counts with a "B" suffix.
type plainFormatter struct{}

func (plainFormatter) FormatBytes(b float64) string { return fmt.Sprintf("%.0f B", b) }
func (plainFormatter) GBToBytes(gb float64) float64 { return gb * (1 << 30) }

func sampleServerTotal() *console.ServerTotal {
	return &console.ServerTotal{
		OnlineUserIPs:   15,
		OnlineServers:   6,
		OfflineServers:  2,
		TodayUpload:     1 << 20,
		TodayDownload:   3 << 20,
		MonthlyUpload:   1 << 30,
		MonthlyDownload: 5 << 30,
		ServerTrafficRankingToday: []console.ServerTrafficItem{
			{ServerID: 1, Name: "hk-01", Upload: 300, Download: 700},
			{ServerID: 2, Name: "jp-02", Upload: 100, Download: 400},
			{ServerID: 3, Name: "us-03", Upload: 50, Download: 50},
		},
		ServerTrafficRankingYesterday: []console.ServerTrafficItem{
			{ServerID: 2, Name: "jp-02", Upload: 900, Download: 900},
		},
		UserTrafficRankingToday: []console.UserTrafficItem{
			{UserID: "42", Email: "alice@example.com", Upload: 10, Download: 90},
			{UserID: "7", Email: "", Upload: 5, Download: 5},
		},
	}
}
