package chart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-chart/internal/ledger"
)

// Bucket aggregates the rows that share a period key.
type Bucket struct {
	// Key is the first instant of the period: Jan 1 for yearly, the quarter or
	// month start, or the row date for daily.
	Key   time.Time
	Label string
	// Amount is the sum of amounts in the bucket.
	Amount decimal.Decimal
	// RunningTotal is the running total at the bucket's last row.
	RunningTotal decimal.Decimal
	Count        int
}

// Bucketize groups the table by tf. Buckets come out in ascending key order
// because the table is already sorted by date. Daily yields one bucket per row.
func Bucketize(tf Timeframe, table *ledger.Table) ([]Bucket, error) {
	if !tf.Valid() {
		return nil, &InvalidTimeframeError{Value: string(tf)}
	}

	buckets := make([]Bucket, 0)
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		key := periodStart(tf, row.Date)

		last := len(buckets) - 1
		if tf != Daily && last >= 0 && buckets[last].Key.Equal(key) {
			buckets[last].Amount = buckets[last].Amount.Add(row.Amount)
			buckets[last].RunningTotal = row.RunningTotal
			buckets[last].Count++
			continue
		}

		buckets = append(buckets, Bucket{
			Key:          key,
			Label:        periodLabel(tf, key),
			Amount:       row.Amount,
			RunningTotal: row.RunningTotal,
			Count:        1,
		})
	}

	return buckets, nil
}

func periodStart(tf Timeframe, d time.Time) time.Time {
	switch tf {
	case Yearly:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, d.Location())
	case Quarterly:
		quarterStartMonth := time.Month(((int(d.Month())-1)/3)*3 + 1)
		return time.Date(d.Year(), quarterStartMonth, 1, 0, 0, 0, 0, d.Location())
	case Monthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	default:
		return d
	}
}

func periodLabel(tf Timeframe, key time.Time) string {
	if tf == Yearly {
		return key.Format("2006")
	}
	return key.Format("2006-01-02")
}
