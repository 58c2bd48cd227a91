package chart

import (
	"time"

	"github.com/carson-networks/ledger-chart/internal/ledger"
)

const (
	Title            = "Abs Amount and Cumulative Sum over Time"
	XAxisTitle       = "Date"
	AmountSeriesName = "Abs Amount"
	TotalSeriesName  = "Cumulative Sum"

	ModeLinesMarkers = "lines+markers"
	ModeLines        = "lines"

	AmountColor = "blue"
	TotalColor  = "orange"
)

// Description is a declarative two-series chart. Its JSON form follows the
// plotly figure layout ({"data": [...], "layout": {...}}).
type Description struct {
	Timeframe Timeframe `json:"timeframe"`
	Data      []Series  `json:"data"`
	Layout    Layout    `json:"layout"`

	// Keys holds the bucket start instants backing the shared x values.
	Keys []time.Time `json:"-"`
}

// Series is one trace of the chart.
type Series struct {
	Type  string    `json:"type"`
	Name  string    `json:"name"`
	Mode  string    `json:"mode"`
	X     []string  `json:"x"`
	Y     []float64 `json:"y"`
	Line  Line      `json:"line"`
	YAxis string    `json:"yaxis,omitempty"`
}

type Line struct {
	Color string `json:"color"`
}

type Layout struct {
	Title     Text   `json:"title"`
	XAxis     Axis   `json:"xaxis"`
	YAxis     Axis   `json:"yaxis"`
	YAxis2    Axis   `json:"yaxis2"`
	HoverMode string `json:"hovermode"`
}

type Axis struct {
	Title      Text   `json:"title"`
	Overlaying string `json:"overlaying,omitempty"`
	Side       string `json:"side,omitempty"`
}

type Text struct {
	Text string `json:"text"`
}

// Amounts returns the per-bucket amount series.
func (d Description) Amounts() Series {
	return d.Data[0]
}

// Totals returns the per-bucket running total series.
func (d Description) Totals() Series {
	return d.Data[1]
}

// Render buckets the table by tf and builds the chart. It only reads the
// table, so repeated calls with the same arguments return equal results.
func Render(tf Timeframe, table *ledger.Table) (Description, error) {
	buckets, err := Bucketize(tf, table)
	if err != nil {
		return Description{}, err
	}

	keys := make([]time.Time, len(buckets))
	x := make([]string, len(buckets))
	amounts := make([]float64, len(buckets))
	totals := make([]float64, len(buckets))
	for i, b := range buckets {
		keys[i] = b.Key
		x[i] = b.Label
		amounts[i] = b.Amount.InexactFloat64()
		totals[i] = b.RunningTotal.InexactFloat64()
	}

	return Description{
		Timeframe: tf,
		Keys:      keys,
		Data: []Series{
			{
				Type: "scatter",
				Name: AmountSeriesName,
				Mode: ModeLinesMarkers,
				X:    x,
				Y:    amounts,
				Line: Line{Color: AmountColor},
			},
			{
				Type:  "scatter",
				Name:  TotalSeriesName,
				Mode:  ModeLines,
				X:     x,
				Y:     totals,
				Line:  Line{Color: TotalColor},
				YAxis: "y2",
			},
		},
		Layout: Layout{
			Title:  Text{Text: Title},
			XAxis:  Axis{Title: Text{Text: XAxisTitle}},
			YAxis:  Axis{Title: Text{Text: AmountSeriesName}},
			YAxis2: Axis{
				Title:      Text{Text: TotalSeriesName},
				Overlaying: "y",
				Side:       "right",
			},
			HoverMode: "closest",
		},
	}, nil
}
