package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/ledger"
	"github.com/carson-networks/ledger-chart/internal/operator/actions"
)

type mockAction struct {
	mock.Mock
}

func (m *mockAction) Perform(ctx context.Context, table *ledger.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func newTestTable() *ledger.Table {
	return ledger.Normalize([]ledger.Transaction{
		{Date: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("1000.50")},
		{Date: time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("-200.00")},
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("50")},
	})
}

func newStartedDelegator(t *testing.T, table *ledger.Table, workers int) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(table, workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_PassesSharedTable(t *testing.T) {
	table := newTestTable()
	d := newStartedDelegator(t, table, 1)

	action := new(mockAction)
	action.On("Perform", mock.Anything, table).Return(nil)

	assert.NoError(t, d.Process(context.Background(), action))
	action.AssertExpectations(t)
}

func TestProcess_ReturnsActionError(t *testing.T) {
	d := newStartedDelegator(t, newTestTable(), 1)

	action := new(mockAction)
	action.On("Perform", mock.Anything, mock.Anything).Return(errors.New("boom"))

	err := d.Process(context.Background(), action)
	assert.EqualError(t, err, "boom")
}

func TestProcess_PanickingActionKeepsWorker(t *testing.T) {
	d := newStartedDelegator(t, newTestTable(), 1)

	bad := new(mockAction)
	bad.On("Perform", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("zero range")
	}).Return(nil)

	err := d.Process(context.Background(), bad)
	assert.ErrorIs(t, err, ErrActionPanicked)
	assert.Contains(t, err.Error(), "zero range")

	good := new(mockAction)
	good.On("Perform", mock.Anything, mock.Anything).Return(nil)
	assert.NoError(t, d.Process(context.Background(), good))
}

func TestProcess_CancelledContextSkipsAction(t *testing.T) {
	d := newStartedDelegator(t, newTestTable(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	action := new(mockAction)
	err := d.Process(ctx, action)

	assert.ErrorIs(t, err, context.Canceled)
	action.AssertNotCalled(t, "Perform", mock.Anything, mock.Anything)
}

type countingAction struct {
	active  *int32
	maxSeen *int32
}

func (c *countingAction) Perform(ctx context.Context, table *ledger.Table) error {
	n := atomic.AddInt32(c.active, 1)
	for {
		seen := atomic.LoadInt32(c.maxSeen)
		if n <= seen || atomic.CompareAndSwapInt32(c.maxSeen, seen, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(c.active, -1)
	return nil
}

func TestProcess_SingleWorkerNeverOverlaps(t *testing.T) {
	d := newStartedDelegator(t, newTestTable(), 1)

	var active, maxSeen int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), &countingAction{active: &active, maxSeen: &maxSeen}))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxSeen))
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(newTestTable(), 0)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), new(mockAction))
	assert.ErrorIs(t, err, ErrStopped)
}

// -- actions --

func TestRenderChartAction(t *testing.T) {
	d := newStartedDelegator(t, newTestTable(), 1)

	action := &actions.RenderChart{Timeframe: chart.Yearly}
	require.NoError(t, d.Process(context.Background(), action))

	assert.Equal(t, []string{"2023", "2024"}, action.Result.Amounts().X)
	assert.InDeltaSlice(t, []float64{800.50, 850.50}, action.Result.Totals().Y, 1e-9)
}

func TestRenderChartAction_InvalidTimeframe(t *testing.T) {
	d := newStartedDelegator(t, newTestTable(), 1)

	err := d.Process(context.Background(), &actions.RenderChart{Timeframe: chart.Timeframe("weekly")})
	assert.ErrorIs(t, err, chart.ErrInvalidTimeframe)
}

func TestRenderChartImageAction(t *testing.T) {
	d := newStartedDelegator(t, newTestTable(), 1)

	action := &actions.RenderChartImage{Timeframe: chart.Monthly, Width: 640, Height: 320}
	require.NoError(t, d.Process(context.Background(), action))
	assert.Equal(t, []byte("\x89PNG"), action.Result[:4])
}
