package chart

import (
	"errors"
	"io"
	"math"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// ErrNoData is returned when a chart with no buckets is rasterized.
var ErrNoData = errors.New("chart has no data points")

var (
	amountColor = drawing.ColorFromHex("1f77b4")
	totalColor  = drawing.ColorFromHex("ff7f0e")
)

// WritePNG draws desc as a PNG with the running total on a secondary y-axis.
func WritePNG(w io.Writer, desc Description, width, height int) error {
	if len(desc.Keys) == 0 || len(desc.Data) < 2 {
		return ErrNoData
	}
	amounts := desc.Amounts()
	totals := desc.Totals()

	graph := gochart.Chart{
		Title:  desc.Layout.Title.Text,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:           desc.Layout.XAxis.Title.Text,
			ValueFormatter: gochart.TimeValueFormatterWithFormat(keyLayout(desc.Timeframe)),
			Range:          timeRange(desc.Keys),
		},
		YAxis: gochart.YAxis{
			Name:  desc.Layout.YAxis.Title.Text,
			Range: valueRange(amounts.Y),
		},
		YAxisSecondary: gochart.YAxis{
			Name:  desc.Layout.YAxis2.Title.Text,
			Range: valueRange(totals.Y),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    amounts.Name,
				XValues: desc.Keys,
				YValues: amounts.Y,
				Style: gochart.Style{
					StrokeColor: amountColor,
					StrokeWidth: 2,
					DotColor:    amountColor,
					DotWidth:    3,
				},
			},
			gochart.TimeSeries{
				Name:    totals.Name,
				YAxis:   gochart.YAxisSecondary,
				XValues: desc.Keys,
				YValues: totals.Y,
				Style: gochart.Style{
					StrokeColor: totalColor,
					StrokeWidth: 2,
				},
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return graph.Render(gochart.PNG, w)
}

func keyLayout(tf Timeframe) string {
	switch tf {
	case Yearly:
		return "2006"
	case Quarterly, Monthly:
		return "2006-01"
	default:
		return "2006-01-02"
	}
}

// go-chart rejects zero-width ranges, so a lone point gets a day either side.
func timeRange(keys []time.Time) gochart.Range {
	first, last := keys[0], keys[len(keys)-1]
	if !first.Equal(last) {
		return nil
	}
	return &gochart.ContinuousRange{
		Min: gochart.TimeToFloat64(first.AddDate(0, 0, -1)),
		Max: gochart.TimeToFloat64(last.AddDate(0, 0, 1)),
	}
}

func valueRange(values []float64) gochart.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi > lo {
		return nil
	}
	pad := math.Max(math.Abs(hi)*0.1, 1)
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
