package actions

import (
	"bytes"
	"context"

	"github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/ledger"
)

// RenderChart buckets the table by Timeframe and stores the result in Result.
type RenderChart struct {
	Timeframe chart.Timeframe

	Result chart.Description
	IAction
}

func (r *RenderChart) Perform(ctx context.Context, table *ledger.Table) error {
	desc, err := chart.Render(r.Timeframe, table)
	if err != nil {
		return err
	}

	r.Result = desc
	return nil
}

// RenderChartImage renders the chart and rasterizes it to PNG bytes.
type RenderChartImage struct {
	Timeframe chart.Timeframe
	Width     int
	Height    int

	Result []byte
	IAction
}

func (r *RenderChartImage) Perform(ctx context.Context, table *ledger.Table) error {
	desc, err := chart.Render(r.Timeframe, table)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, desc, r.Width, r.Height); err != nil {
		return err
	}

	r.Result = buf.Bytes()
	return nil
}
