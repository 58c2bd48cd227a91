package service

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-chart/internal/ledger"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// TransactionService exposes the normalized table.
type TransactionService struct {
	table *ledger.Table
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(table *ledger.Table) *TransactionService {
	return &TransactionService{table: table}
}

// ListTransactions returns a page of transactions in date order using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	limit := defaultLimit
	offset := 0
	var from, to time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		from, to = cursor.From, cursor.To
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	lo, hi := s.table.Between(from, to)
	remaining := hi - lo - offset
	if remaining <= 0 {
		return nil, nil, nil
	}

	rows := s.table.Slice(lo+offset, min(limit, remaining))

	var nextCursor *TransactionCursor
	if remaining > limit {
		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
			From:     from,
			To:       to,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			Line:         row.Line,
			Date:         row.Date,
			Amount:       row.Amount,
			RunningTotal: row.RunningTotal,
		}
	}

	return convertedTransactions, nextCursor, nil
}

// Summary returns the row count, date span and final running total.
func (s *TransactionService) Summary() Summary {
	return Summary{
		Rows:      s.table.Len(),
		FirstDate: s.table.FirstDate(),
		LastDate:  s.table.LastDate(),
		Total:     s.table.Total(),
	}
}
