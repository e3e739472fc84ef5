package dashboard

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultTickCount is the number of X axis ticks the chart aims for.
const DefaultTickCount = 5

// TrafficChart is the ranking card: controls plus either bars or the empty placeholder.
type TrafficChart struct {
	Selection   Selection    `json:"selection"`
	Title       string       `json:"title"`
	Heading     string       `json:"heading"`
	SeriesLabel string       `json:"series_label"`
	EmailLabel  string       `json:"email_label,omitempty"`
	TimeFrames  []Option     `json:"time_frames"`
	DataTypes   []Option     `json:"data_types"`
	Placeholder string       `json:"placeholder"`
	Empty       bool         `json:"empty"`
	EmptyText   string       `json:"empty_text,omitempty"`
	Rows        []TrafficRow `json:"rows"`
	Bars        []Bar        `json:"bars"`
	Ticks       []Tick       `json:"ticks"`
}

// Option is a selectable tab or dropdown entry.
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Bar is one horizontal bar. The Y axis shows RankLabel, the bar itself shows Label.
type Bar struct {
	Rank         int     `json:"rank"`
	RankLabel    string  `json:"rank_label"`
	Label        string  `json:"label"`
	Value        int64   `json:"value"`
	Percent      float64 `json:"percent"`
	Tooltip      string  `json:"tooltip"`
	TooltipValue string  `json:"tooltip_value"`
	Email        *string `json:"email,omitempty"`
}

// Tick is one X axis tick; Percent is its position along the axis.
type Tick struct {
	Value   float64 `json:"value"`
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// BuildTrafficChart lays out the ranking chart for the selection. Rows keep
// the console's order. Tick labels read the axis values as gigabytes while
// the bars are measured in the raw byte values.
func BuildTrafficChart(data TrafficData, sel Selection, tr Translator, f Formatter, tickCount int) TrafficChart {
	rows := data.Lookup(sel)

	chart := TrafficChart{
		Selection:   sel,
		Title:       tr.T(MsgTrafficRank),
		Heading:     tr.T(MsgNodeTraffic),
		SeriesLabel: tr.T(MsgTodayUploadTraffic),
		Placeholder: tr.T(MsgSelectTypePlaceholder),
		Rows:        rows,
		Bars:        []Bar{},
		Ticks:       []Tick{},
	}
	if sel.DataType == DataTypeUsers {
		chart.Heading = tr.T(MsgUserTraffic)
		chart.EmailLabel = tr.T(MsgEmail)
	}

	for _, tf := range TimeFrames {
		chart.TimeFrames = append(chart.TimeFrames, Option{
			Value:  string(tf),
			Label:  tr.T(string(tf)),
			Active: tf == sel.TimeFrame,
		})
	}
	for _, dt := range DataTypes {
		chart.DataTypes = append(chart.DataTypes, Option{
			Value:  string(dt),
			Label:  tr.T(string(dt)),
			Active: dt == sel.DataType,
		})
	}

	if len(rows) == 0 {
		chart.Empty = true
		chart.EmptyText = tr.T(MsgNoData)
		return chart
	}

	var maxTraffic float64
	for _, row := range rows {
		maxTraffic = math.Max(maxTraffic, float64(row.Traffic))
	}

	ticks := NiceTicks(maxTraffic, tickCount)
	domainMax := ticks[len(ticks)-1]

	for _, v := range ticks {
		chart.Ticks = append(chart.Ticks, Tick{
			Value:   v,
			Label:   TickLabel(v, f),
			Percent: percentOf(v, domainMax),
		})
	}

	dimension := tr.T(MsgNodes)
	if sel.DataType == DataTypeUsers {
		dimension = tr.T(MsgUsers)
	}

	for i, row := range rows {
		chart.Bars = append(chart.Bars, Bar{
			Rank:         i + 1,
			RankLabel:    strconv.Itoa(i + 1),
			Label:        row.Name,
			Value:        row.Traffic,
			Percent:      percentOf(float64(row.Traffic), domainMax),
			Tooltip:      fmt.Sprintf("%s: %s", dimension, row.Name),
			TooltipValue: strconv.FormatInt(row.Traffic, 10),
			Email:        row.Email,
		})
	}

	return chart
}

// TickLabel formats an X axis value the way the axis presents it: the value is
// converted from gigabytes to bytes before formatting.
func TickLabel(v float64, f Formatter) string {
	b := f.GBToBytes(v)
	if math.IsNaN(b) || math.IsInf(b, 0) {
		b = 0
	}
	return f.FormatBytes(b)
}

// NiceTicks returns evenly spaced, rounded ticks from zero covering maxValue.
// A non-positive maxValue yields the ticks of the unit domain.
func NiceTicks(maxValue float64, count int) []float64 {
	if count < 2 {
		count = DefaultTickCount
	}
	if maxValue <= 0 || math.IsNaN(maxValue) || math.IsInf(maxValue, 0) {
		maxValue = 1
	}

	step := niceStep(maxValue / float64(count-1))
	top := math.Ceil(maxValue/step) * step

	n := int(math.Round(top/step)) + 1
	ticks := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	return ticks
}

func niceStep(rough float64) float64 {
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	fraction := rough / base

	var nice float64
	switch {
	case fraction <= 1:
		nice = 1
	case fraction <= 2:
		nice = 2
	case fraction <= 2.5:
		nice = 2.5
	case fraction <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * base
}

func percentOf(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Round(v/max*10000) / 100
}
