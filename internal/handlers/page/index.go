package page

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/logging"
	"github.com/carson-networks/ledger-chart/internal/service"
	appweb "github.com/carson-networks/ledger-chart/web"
)

const dateLayout = "2006-01-02"

type summarizer interface {
	Summary() service.Summary
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type indexData struct {
	Title     string
	Timeframe string
	Options   []option
	Error     string
	Rows      int
	FirstDate string
	LastDate  string
	Total     string
}

// IndexHandler serves the timeframe selector and the chart image.
type IndexHandler struct {
	Transactions     summarizer
	DefaultTimeframe chart.Timeframe
	templates        *template.Template
}

// NewIndexHandler parses the embedded templates.
func NewIndexHandler(svc summarizer, def chart.Timeframe) (*IndexHandler, error) {
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &IndexHandler{Transactions: svc, DefaultTimeframe: def, templates: t}, nil
}

func (h *IndexHandler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return errors.New("index: method not GET")
	}

	status := http.StatusOK
	data := indexData{Title: chart.Title}

	tf := h.DefaultTimeframe
	if value := req.URL.Query().Get("timeframe"); value != "" {
		parsed, err := chart.ParseTimeframe(value)
		if err != nil {
			status = http.StatusBadRequest
			data.Error = err.Error()
		} else {
			tf = parsed
		}
	}
	logData.AddData("timeframe", tf.String())

	data.Timeframe = tf.String()
	for _, t := range chart.Timeframes() {
		data.Options = append(data.Options, option{Value: t.String(), Label: t.Label(), Selected: t == tf})
	}

	summary := h.Transactions.Summary()
	data.Rows = summary.Rows
	data.Total = summary.Total.StringFixed(2)
	if summary.Rows > 0 {
		data.FirstDate = summary.FirstDate.Format(dateLayout)
		data.LastDate = summary.LastDate.Format(dateLayout)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return h.templates.ExecuteTemplate(w, "index.html", data)
}
