package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMetricTiles_Layout(t *testing.T) {
	tickets := int64(9)

	tiles := BuildMetricTiles(sampleServerTotal(), &tickets, keyTranslator{}, plainFormatter{})

	require.Len(t, tiles, 8)
	wantKeys := []string{
		MsgOnlineIPCount, MsgOnlineNodeCount, MsgOfflineNodeCount, MsgPendingTickets,
		MsgTodayUploadTraffic, MsgTodayDownloadTraffic, MsgMonthUploadTraffic, MsgMonthDownloadTraffic,
	}
	for i, key := range wantKeys {
		assert.Equal(t, key, tiles[i].Key)
		assert.Equal(t, key, tiles[i].Title)
		assert.NotEmpty(t, tiles[i].Icon)
	}

	assert.Equal(t, "15", tiles[0].Value)
	assert.Equal(t, "6", tiles[1].Value)
	assert.Equal(t, "2", tiles[2].Value)
	assert.Equal(t, "9", tiles[3].Value)
	assert.Equal(t, "1048576 B", tiles[4].Value)
	assert.Equal(t, "5368709120 B", tiles[7].Value)
}

func TestBuildMetricTiles_Links(t *testing.T) {
	tiles := BuildMetricTiles(nil, nil, keyTranslator{}, plainFormatter{})

	for i, tile := range tiles {
		switch {
		case i < 3:
			assert.Equal(t, RouteServers, tile.Href)
		case i == 3:
			assert.Equal(t, RouteTickets, tile.Href)
		default:
			assert.False(t, tile.Clickable(), "traffic tiles are static")
		}
	}
}

func TestBuildMetricTiles_AbsentDataFallsBackToZero(t *testing.T) {
	tiles := BuildMetricTiles(nil, nil, keyTranslator{}, plainFormatter{})

	require.Len(t, tiles, 8)
	for i, tile := range tiles {
		if i < 4 {
			assert.Equal(t, "0", tile.Value, tile.Key)
		} else {
			assert.Equal(t, "0 B", tile.Value, tile.Key)
		}
	}
}
