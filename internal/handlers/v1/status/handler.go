package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/ledger-chart/internal/logging"
	"github.com/carson-networks/ledger-chart/internal/service"
)

type summarizer interface {
	Summary() service.Summary
}

type response struct {
	Status    string `json:"status"`
	Rows      int    `json:"rows"`
	FirstDate string `json:"firstDate,omitempty"`
	LastDate  string `json:"lastDate,omitempty"`
	Total     string `json:"total"`
}

type Handler struct {
	Transactions summarizer
}

func NewHandler(svc summarizer) Handler {
	return Handler{Transactions: svc}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	summary := h.Transactions.Summary()
	logData.AddData("rows", summary.Rows)

	resp := response{
		Status: "ok",
		Rows:   summary.Rows,
		Total:  summary.Total.String(),
	}
	if summary.Rows > 0 {
		resp.FirstDate = summary.FirstDate.Format("2006-01-02")
		resp.LastDate = summary.LastDate.Format("2006-01-02")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}
