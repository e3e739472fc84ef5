package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/statsboard/internal/domain/console"
)

func TestDeriveTrafficData_NodeRows(t *testing.T) {
	st := sampleServerTotal()

	data := DeriveTrafficData(st)

	require.Len(t, data.Nodes.Today, len(st.ServerTrafficRankingToday))
	for i, item := range st.ServerTrafficRankingToday {
		row := data.Nodes.Today[i]
		assert.Equal(t, item.Name, row.Name)
		assert.Equal(t, int64(item.Download+item.Upload), row.Traffic)
		assert.Nil(t, row.Email, "node rows carry no email")
	}
	require.Len(t, data.Nodes.Yesterday, 1)
	assert.Equal(t, int64(1800), data.Nodes.Yesterday[0].Traffic)
}

func TestDeriveTrafficData_UserRows(t *testing.T) {
	data := DeriveTrafficData(sampleServerTotal())

	require.Len(t, data.Users.Today, 2)
	assert.Equal(t, "42", data.Users.Today[0].Name)
	assert.Equal(t, int64(100), data.Users.Today[0].Traffic)
	for _, row := range data.Users.Today {
		require.NotNil(t, row.Email, "user rows always carry an email")
	}
	assert.Equal(t, "alice@example.com", *data.Users.Today[0].Email)
	assert.Equal(t, "", *data.Users.Today[1].Email)
}

func TestDeriveTrafficData_PreservesOrder(t *testing.T) {
	st := &console.ServerTotal{
		ServerTrafficRankingToday: []console.ServerTrafficItem{
			{Name: "small", Upload: 1},
			{Name: "large", Upload: 1000},
		},
	}

	rows := DeriveTrafficData(st).Nodes.Today

	assert.Equal(t, "small", rows[0].Name)
	assert.Equal(t, "large", rows[1].Name)
}

func TestDeriveTrafficData_Absent(t *testing.T) {
	for name, st := range map[string]*console.ServerTotal{
		"nil snapshot":   nil,
		"missing lists":  {OnlineServers: 3},
		"explicit empty": {UserTrafficRankingToday: []console.UserTrafficItem{}},
	} {
		t.Run(name, func(t *testing.T) {
			data := DeriveTrafficData(st)

			for _, rows := range [][]TrafficRow{
				data.Nodes.Today, data.Nodes.Yesterday, data.Users.Today, data.Users.Yesterday,
			} {
				assert.NotNil(t, rows)
				assert.Empty(t, rows)
			}
		})
	}
}

func TestTrafficData_Lookup(t *testing.T) {
	data := DeriveTrafficData(sampleServerTotal())

	sel := DefaultSelection()
	assert.Equal(t, data.Nodes.Today, data.Lookup(sel))

	toggled := sel.WithTimeFrame(TimeFrameYesterday)
	assert.Equal(t, DataTypeNodes, toggled.DataType, "toggling the day keeps the dimension")
	assert.Equal(t, data.Nodes.Yesterday, data.Lookup(toggled))

	assert.Equal(t, data.Users.Today, data.Lookup(sel.WithDataType(DataTypeUsers)))
	assert.Empty(t, data.Lookup(Selection{DataType: DataTypeUsers, TimeFrame: TimeFrameYesterday}))
}

func TestTrafficData_LookupNeverNil(t *testing.T) {
	var zero TrafficData

	for _, dt := range DataTypes {
		for _, tf := range TimeFrames {
			assert.NotNil(t, zero.Lookup(Selection{DataType: dt, TimeFrame: tf}))
		}
	}
	assert.NotNil(t, zero.Lookup(Selection{DataType: "servers", TimeFrame: "week"}))
}

func TestDeriveTrafficData_KeepsConsoleStrings(t *testing.T) {
	st := &console.ServerTotal{
		ServerTrafficRankingToday: []console.ServerTrafficItem{
			{Name: "x<y", Upload: 1},
			{Name: "HK <premium>", Upload: 2},
			{Name: "  jp-01 & co  ", Upload: 3},
		},
		UserTrafficRankingToday: []console.UserTrafficItem{
			{UserID: "9", Email: "a<b>c@example.com"},
		},
	}

	data := DeriveTrafficData(st)

	require.Len(t, data.Nodes.Today, 3)
	assert.Equal(t, "x<y", data.Nodes.Today[0].Name)
	assert.Equal(t, "HK <premium>", data.Nodes.Today[1].Name)
	assert.Equal(t, "  jp-01 & co  ", data.Nodes.Today[2].Name)
	require.Len(t, data.Users.Today, 1)
	assert.Equal(t, "a<b>c@example.com", *data.Users.Today[0].Email)
}
