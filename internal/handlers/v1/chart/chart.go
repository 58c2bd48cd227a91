package chart

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-chart/internal/chart"
)

// chartRenderer is the interface for rendering the ledger chart.
type chartRenderer interface {
	Render(ctx context.Context, tf chart.Timeframe) (chart.Description, error)
	RenderImage(ctx context.Context, tf chart.Timeframe, width, height int) ([]byte, error)
}

// parseTimeframe resolves the query value, falling back to def when empty.
func parseTimeframe(value string, def chart.Timeframe) (chart.Timeframe, error) {
	if value == "" {
		return def, nil
	}
	tf, err := chart.ParseTimeframe(value)
	if err != nil {
		return "", huma.Error400BadRequest(err.Error(), err)
	}
	return tf, nil
}

func renderError(msg string, err error) error {
	switch {
	case errors.Is(err, chart.ErrInvalidTimeframe):
		return huma.Error400BadRequest(err.Error(), err)
	case errors.Is(err, chart.ErrNoData):
		return huma.Error404NotFound("no transactions to chart", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusServiceUnavailable, msg, err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
