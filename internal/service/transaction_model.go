package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a normalized transaction in the service layer.
type Transaction struct {
	Line         int
	Date         time.Time
	Amount       decimal.Decimal
	RunningTotal decimal.Decimal
}

// TransactionCursor identifies a position in a paginated result set. It
// carries the limit and date bounds so subsequent pages are consistent.
// Position counts rows within the bounds. Zero bounds are open.
type TransactionCursor struct {
	Position int
	Limit    int
	From     time.Time
	To       time.Time
}

// Summary describes the loaded table as a whole.
type Summary struct {
	Rows      int
	FirstDate time.Time
	LastDate  time.Time
	Total     decimal.Decimal
}
