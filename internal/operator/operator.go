package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/ledger-chart/internal/ledger"
	"github.com/carson-networks/ledger-chart/internal/operator/actions"
)

// ErrActionPanicked wraps the value recovered from a panicking action.
var ErrActionPanicked = errors.New("operator: action panicked")

// Operator is the worker that processes items from the queue.
type Operator struct {
	table *ledger.Table
	queue chan ActionItem
}

func NewOperator(table *ledger.Table, queue chan ActionItem) *Operator {
	return &Operator{
		table: table,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller stopped waiting; skip the work.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{err: o.perform(item)}
}

// perform runs the action, turning a panic into an error so one bad render
// cannot take the worker down.
func (o *Operator) perform(item ActionItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrActionPanicked, r)
		}
	}()
	return item.action.Perform(item.ctx, o.table)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
