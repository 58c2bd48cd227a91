package service

import (
	"github.com/carson-networks/ledger-chart/internal/ledger"
	"github.com/carson-networks/ledger-chart/internal/operator"
)

// Service holds all business logic services.
type Service struct {
	Chart       *ChartService
	Transaction *TransactionService
}

// NewService creates a new Service over the loaded table. Chart rendering is
// routed through op.
func NewService(table *ledger.Table, op *operator.OperatorDelegator) *Service {
	return &Service{
		Chart:       NewChartService(op),
		Transaction: NewTransactionService(table),
	}
}
