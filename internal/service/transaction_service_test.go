package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-chart/internal/ledger"
)

func makeTable(n int, start time.Time) *ledger.Table {
	transactions := make([]ledger.Transaction, n)
	for i := range transactions {
		transactions[i] = ledger.Transaction{
			Line:   i + 2,
			Date:   start.AddDate(0, 0, i),
			Amount: decimal.RequireFromString("5.00"),
		}
	}
	return ledger.Normalize(transactions)
}

func newTestTransactionService(n int) *TransactionService {
	return NewTransactionService(makeTable(n, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
}

// -- ListTransactions tests --

func TestListTransactions_NoResults(t *testing.T) {
	svc := newTestTransactionService(0)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc := newTestTransactionService(2)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)

	tx := txs[1]
	assert.Equal(t, 3, tx.Line)
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("5")))
	assert.True(t, tx.RunningTotal.Equal(decimal.RequireFromString("10")))
}

func TestListTransactions_HasNextPage(t *testing.T) {
	svc := newTestTransactionService(defaultLimit + 1)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")

	assert.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
}

func TestListTransactions_WithCursor(t *testing.T) {
	svc := newTestTransactionService(25)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), &TransactionCursor{
		Position: 20,
		Limit:    2,
	})

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, 22, txs[0].Line)

	assert.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
}

func TestListTransactions_LastPage(t *testing.T) {
	svc := newTestTransactionService(5)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), &TransactionCursor{Position: 3, Limit: 2})

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_CancelledContext(t *testing.T) {
	svc := newTestTransactionService(3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	txs, _, err := svc.ListTransactions(ctx, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, txs)
}

func TestSummary(t *testing.T) {
	svc := newTestTransactionService(4)

	summary := svc.Summary()

	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), summary.FirstDate)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), summary.LastDate)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("20")))
}

func TestListTransactions_LimitClamped(t *testing.T) {
	svc := newTestTransactionService(150)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), &TransactionCursor{Position: 0, Limit: 500})

	assert.NoError(t, err)
	assert.Len(t, txs, maxLimit)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, maxLimit, nextCursor.Limit)
	assert.Equal(t, maxLimit, nextCursor.Position)
}

func TestListTransactions_DateRange(t *testing.T) {
	svc := newTestTransactionService(10)
	from := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), &TransactionCursor{Limit: 3, From: from, To: to})

	assert.NoError(t, err)
	assert.Len(t, txs, 3)
	assert.Equal(t, from, txs[0].Date)
	assert.True(t, txs[0].RunningTotal.Equal(decimal.RequireFromString("15")), "running total counts rows before the range")

	assert.NotNil(t, nextCursor)
	assert.Equal(t, 3, nextCursor.Position)
	assert.Equal(t, from, nextCursor.From)
	assert.Equal(t, to, nextCursor.To)

	txs, nextCursor, err = svc.ListTransactions(context.Background(), nextCursor)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, to, txs[1].Date)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_DateRangeEmpty(t *testing.T) {
	svc := newTestTransactionService(3)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), &TransactionCursor{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}
