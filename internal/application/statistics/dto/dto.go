package dto

import (
	"github.com/orris-inc/statsboard/internal/domain/dashboard"
)

// QueryStatusDTO reports how one console query settled.
type QueryStatusDTO struct {
	Key       string `json:"key"`
	Status    string `json:"status"`
	FromCache bool   `json:"from_cache"`
}

// StatisticsResponse is the whole dashboard: tiles, the four ranking arrays
// and the chart for the current selection.
type StatisticsResponse struct {
	Lang    string                 `json:"lang"`
	Title   string                 `json:"title"`
	Tiles   []dashboard.Tile       `json:"tiles"`
	Traffic dashboard.TrafficData  `json:"traffic"`
	Chart   dashboard.TrafficChart `json:"chart"`
	Queries []QueryStatusDTO       `json:"queries"`
}

// TrafficRankingResponse is the ranking card alone.
type TrafficRankingResponse struct {
	Lang  string                 `json:"lang"`
	Chart dashboard.TrafficChart `json:"chart"`
}

// InvalidateRequest names the cached queries to drop; empty means all.
type InvalidateRequest struct {
	Keys []string `json:"keys" binding:"omitempty,max=8,dive,required"`
}

// InvalidateResponse lists the dropped query keys.
type InvalidateResponse struct {
	Keys []string `json:"keys"`
}

// StatisticsQueryRequest is the query string of the statistics endpoints.
type StatisticsQueryRequest struct {
	Type  string `form:"type" binding:"omitempty,oneof=nodes users"`
	Range string `form:"range" binding:"omitempty,oneof=today yesterday"`
	Lang  string `form:"lang" binding:"omitempty,bcp47_language_tag"`
}
