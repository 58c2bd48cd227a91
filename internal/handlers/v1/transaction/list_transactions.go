package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-chart/internal/logging"
	"github.com/carson-networks/ledger-chart/internal/service"
)

const dateLayout = "2006-01-02"

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It carries the date bounds from the first page so later pages stay in range.
type ListTransactionsCursor struct {
	Position int    `json:"position" minimum:"0" doc:"Offset within the date range for the next page"`
	Limit    int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	From     string `json:"from,omitempty" format:"date" doc:"Inclusive lower date bound locked in from the first page"`
	To       string `json:"to,omitempty" format:"date" doc:"Inclusive upper date bound locked in from the first page"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	From   string                  `json:"from,omitempty" format:"date" doc:"Only rows on or after this date (YYYY-MM-DD). Ignored when a cursor is given."`
	To     string                  `json:"to,omitempty" format:"date" doc:"Only rows on or before this date (YYYY-MM-DD). Ignored when a cursor is given."`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions in date order"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns the normalized, date-sorted rows with running totals, optionally bounded by date, using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// When a cursor is provided, limit and date bounds come from it.
// Without a cursor or bounds, the service uses its default limit over every row.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionCursor, error) {
	from, to, position, limit := input.Body.From, input.Body.To, 0, 0
	if c := input.Body.Cursor; c != nil {
		if c.Position < 0 {
			return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
		}
		from, to, position, limit = c.From, c.To, c.Position, c.Limit
	}
	if input.Body.Cursor == nil && from == "" && to == "" {
		return nil, nil
	}

	cursor := &service.TransactionCursor{Position: position, Limit: limit}
	var err error
	if cursor.From, err = parseDate(from); err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid from date", err)
	}
	if cursor.To, err = parseDate(to); err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid to date", err)
	}
	if !cursor.From.IsZero() && !cursor.To.IsZero() && cursor.To.Before(cursor.From) {
		return nil, huma.NewError(http.StatusBadRequest, "to date must not be before from date")
	}
	return cursor, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		if requestCursor != nil {
			logData.AddData("position", requestCursor.Position)
		}
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}

	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			Line:         tx.Line,
			Date:         formatDate(tx.Date),
			Amount:       tx.Amount.String(),
			RunningTotal: tx.RunningTotal.String(),
		}
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
			From:     formatDate(nextCursor.From),
			To:       formatDate(nextCursor.To),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
