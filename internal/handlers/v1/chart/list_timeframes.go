package chart

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-chart/internal/chart"
)

// TimeframeOption is one entry of the timeframe selector.
type TimeframeOption struct {
	Label string `json:"label" doc:"Display name"`
	Value string `json:"value" doc:"Value for the timeframe query parameter"`
}

// ListTimeframesResponseBody is the response body for listing timeframes.
type ListTimeframesResponseBody struct {
	Options []TimeframeOption `json:"options" doc:"Selectable timeframes in display order"`
	Default string            `json:"default" doc:"Timeframe used when none is given"`
}

// ListTimeframesOutput is the Huma output for listing timeframes.
type ListTimeframesOutput struct {
	Body ListTimeframesResponseBody
}

// ListTimeframesHandler handles GET /v1/timeframes.
type ListTimeframesHandler struct {
	DefaultTimeframe chart.Timeframe
}

// NewListTimeframesHandler creates a new ListTimeframesHandler.
func NewListTimeframesHandler(def chart.Timeframe) *ListTimeframesHandler {
	return &ListTimeframesHandler{DefaultTimeframe: def}
}

// Register registers the timeframes endpoint with the Huma API.
func (h *ListTimeframesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-timeframes",
		Method:      http.MethodGet,
		Path:        "/v1/timeframes",
		Summary:     "List timeframes",
		Description: "Returns the timeframe selector options.",
		Tags:        []string{"Chart"},
	}, h.handle)
}

func (h *ListTimeframesHandler) handle(ctx context.Context, _ *struct{}) (*ListTimeframesOutput, error) {
	body := ListTimeframesResponseBody{Default: h.DefaultTimeframe.String()}
	for _, tf := range chart.Timeframes() {
		body.Options = append(body.Options, TimeframeOption{Label: tf.Label(), Value: tf.String()})
	}
	return &ListTimeframesOutput{Body: body}, nil
}
