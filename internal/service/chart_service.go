package service

import (
	"context"

	"github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/operator/actions"
)

// actionProcessor runs an action against the shared table.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ChartService renders the ledger chart for a timeframe.
type ChartService struct {
	operator actionProcessor
}

// NewChartService creates a new ChartService.
func NewChartService(op actionProcessor) *ChartService {
	return &ChartService{operator: op}
}

// Render returns the chart description for tf.
func (s *ChartService) Render(ctx context.Context, tf chart.Timeframe) (chart.Description, error) {
	action := &actions.RenderChart{Timeframe: tf}
	if err := s.operator.Process(ctx, action); err != nil {
		return chart.Description{}, err
	}
	return action.Result, nil
}

// RenderImage returns the chart for tf as PNG bytes. Non-positive sizes fall
// back to the chart defaults.
func (s *ChartService) RenderImage(ctx context.Context, tf chart.Timeframe, width, height int) ([]byte, error) {
	if width <= 0 {
		width = chart.DefaultWidth
	}
	if height <= 0 {
		height = chart.DefaultHeight
	}

	action := &actions.RenderChartImage{Timeframe: tf, Width: width, Height: height}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}
