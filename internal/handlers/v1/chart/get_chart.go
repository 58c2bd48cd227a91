package chart

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/logging"
)

// GetChartInput is the Huma input for rendering the chart description.
type GetChartInput struct {
	Timeframe string `query:"timeframe" doc:"One of yearly, quarterly, monthly, daily. Defaults to the configured timeframe."`
}

// GetChartOutput is the Huma output for rendering the chart description.
type GetChartOutput struct {
	Body chart.Description
}

// GetChartHandler handles GET /v1/chart.
type GetChartHandler struct {
	ChartService     chartRenderer
	DefaultTimeframe chart.Timeframe
}

// NewGetChartHandler creates a new GetChartHandler.
func NewGetChartHandler(svc chartRenderer, def chart.Timeframe) *GetChartHandler {
	return &GetChartHandler{ChartService: svc, DefaultTimeframe: def}
}

// Register registers the chart endpoint with the Huma API.
func (h *GetChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-chart",
		Method:      http.MethodGet,
		Path:        "/v1/chart",
		Summary:     "Get chart",
		Description: "Returns the amount and cumulative sum series bucketed by the selected timeframe.",
		Tags:        []string{"Chart"},
	}, h.handle)
}

func (h *GetChartHandler) handle(ctx context.Context, input *GetChartInput) (*GetChartOutput, error) {
	logData := logging.GetLogData(ctx)
	tf, err := parseTimeframe(input.Timeframe, h.DefaultTimeframe)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("timeframe", tf.String())
		stopTimer = logData.AddTiming("renderChartMs")
	}
	desc, err := h.ChartService.Render(ctx, tf)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, renderError("failed to render chart", err)
	}

	if logData != nil {
		logData.AddData("bucketCount", len(desc.Keys))
	}

	return &GetChartOutput{Body: desc}, nil
}
