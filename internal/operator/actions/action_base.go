package actions

import (
	"context"

	"github.com/carson-networks/ledger-chart/internal/ledger"
)

type IAction interface {
	Perform(ctx context.Context, table *ledger.Table) error
}
