package page

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/logging"
	"github.com/carson-networks/ledger-chart/internal/service"
)

type fixedSummary service.Summary

func (f fixedSummary) Summary() service.Summary {
	return service.Summary(f)
}

func scenarioSummary() fixedSummary {
	return fixedSummary{
		Rows:      3,
		FirstDate: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		LastDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Total:     decimal.RequireFromString("850.50"),
	}
}

func serve(t *testing.T, h *IndexHandler, method, target string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	err := h.Handler(w, req, logging.NewLogData(logging.SetupLogging()))
	return w, err
}

func TestIndex_DefaultTimeframe(t *testing.T) {
	h, err := NewIndexHandler(scenarioSummary(), chart.Yearly)
	require.NoError(t, err)

	w, err := serve(t, h, http.MethodGet, "/")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, chart.Title)
	assert.Contains(t, body, `<option value="yearly" selected>Yearly</option>`)
	assert.Contains(t, body, `<option value="daily">Daily</option>`)
	assert.Contains(t, body, `/v1/chart.png?timeframe=yearly`)
	assert.Contains(t, body, "3 transactions from 2023-01-05 to 2024-01-01, total 850.50")
}

func TestIndex_SelectedTimeframe(t *testing.T) {
	h, err := NewIndexHandler(scenarioSummary(), chart.Yearly)
	require.NoError(t, err)

	w, err := serve(t, h, http.MethodGet, "/?timeframe=quarterly")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="quarterly" selected>Quarterly</option>`)
	assert.Contains(t, w.Body.String(), `/v1/chart.png?timeframe=quarterly`)
}

func TestIndex_InvalidTimeframe(t *testing.T) {
	h, err := NewIndexHandler(scenarioSummary(), chart.Monthly)
	require.NoError(t, err)

	w, err := serve(t, h, http.MethodGet, "/?timeframe=weekly")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid timeframe")
	assert.Contains(t, w.Body.String(), `<option value="monthly" selected>Monthly</option>`)
}

func TestIndex_EmptyTable(t *testing.T) {
	h, err := NewIndexHandler(fixedSummary{}, chart.Yearly)
	require.NoError(t, err)

	w, err := serve(t, h, http.MethodGet, "/")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0 transactions")
	assert.NotContains(t, w.Body.String(), "<img")
}

func TestIndex_BadMethod(t *testing.T) {
	h, err := NewIndexHandler(fixedSummary{}, chart.Yearly)
	require.NoError(t, err)

	w, err := serve(t, h, http.MethodPost, "/")
	assert.Error(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
