package chart

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/logging"
)

// GetChartImageInput is the Huma input for rendering the chart as PNG.
type GetChartImageInput struct {
	Timeframe string `query:"timeframe" doc:"One of yearly, quarterly, monthly, daily. Defaults to the configured timeframe."`
	Width     int    `query:"width" minimum:"0" maximum:"4096" doc:"Image width in pixels, 0 for the default"`
	Height    int    `query:"height" minimum:"0" maximum:"4096" doc:"Image height in pixels, 0 for the default"`
}

// GetChartImageOutput is the Huma output for rendering the chart as PNG.
type GetChartImageOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

// GetChartImageHandler handles GET /v1/chart.png.
type GetChartImageHandler struct {
	ChartService     chartRenderer
	DefaultTimeframe chart.Timeframe
}

// NewGetChartImageHandler creates a new GetChartImageHandler.
func NewGetChartImageHandler(svc chartRenderer, def chart.Timeframe) *GetChartImageHandler {
	return &GetChartImageHandler{ChartService: svc, DefaultTimeframe: def}
}

// Register registers the chart image endpoint with the Huma API.
func (h *GetChartImageHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-chart-image",
		Method:      http.MethodGet,
		Path:        "/v1/chart.png",
		Summary:     "Get chart image",
		Description: "Returns the chart rendered as a PNG image with the cumulative sum on a secondary axis.",
		Tags:        []string{"Chart"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PNG image",
				Content:     map[string]*huma.MediaType{"image/png": {}},
			},
		},
	}, h.handle)
}

func (h *GetChartImageHandler) handle(ctx context.Context, input *GetChartImageInput) (*GetChartImageOutput, error) {
	logData := logging.GetLogData(ctx)
	tf, err := parseTimeframe(input.Timeframe, h.DefaultTimeframe)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("timeframe", tf.String())
		stopTimer = logData.AddTiming("renderImageMs")
	}
	img, err := h.ChartService.RenderImage(ctx, tf, input.Width, input.Height)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, renderError("failed to render chart image", err)
	}

	if logData != nil {
		logData.AddData("imageBytes", len(img))
	}

	return &GetChartImageOutput{
		ContentType:  "image/png",
		CacheControl: "no-store",
		Body:         img,
	}, nil
}
