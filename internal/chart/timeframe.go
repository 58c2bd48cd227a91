package chart

import (
	"errors"
	"fmt"
	"strings"
)

// Timeframe is the bucketing granularity selected by the user.
type Timeframe string

const (
	Yearly    Timeframe = "yearly"
	Quarterly Timeframe = "quarterly"
	Monthly   Timeframe = "monthly"
	Daily     Timeframe = "daily"

	DefaultTimeframe = Yearly
)

// ErrInvalidTimeframe matches every InvalidTimeframeError via errors.Is.
var ErrInvalidTimeframe = errors.New("invalid timeframe")

// InvalidTimeframeError is returned for a selector value outside the four
// known timeframes. Unknown values are rejected rather than treated as daily.
type InvalidTimeframeError struct {
	Value string
}

func (e *InvalidTimeframeError) Error() string {
	return fmt.Sprintf("invalid timeframe %q: must be one of %s", e.Value, strings.Join(timeframeValues(), ", "))
}

func (e *InvalidTimeframeError) Is(target error) bool {
	return target == ErrInvalidTimeframe
}

// Timeframes returns the selectable timeframes in selector order.
func Timeframes() []Timeframe {
	return []Timeframe{Yearly, Quarterly, Monthly, Daily}
}

// ParseTimeframe maps a selector value to a Timeframe. The empty string
// selects DefaultTimeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	if s == "" {
		return DefaultTimeframe, nil
	}
	tf := Timeframe(s)
	if !tf.Valid() {
		return "", &InvalidTimeframeError{Value: s}
	}
	return tf, nil
}

// Valid reports whether tf is one of the known timeframes.
func (tf Timeframe) Valid() bool {
	switch tf {
	case Yearly, Quarterly, Monthly, Daily:
		return true
	}
	return false
}

// Label is the display name used by the selector.
func (tf Timeframe) Label() string {
	switch tf {
	case Yearly:
		return "Yearly"
	case Quarterly:
		return "Quarterly"
	case Monthly:
		return "Monthly"
	case Daily:
		return "Daily"
	}
	return string(tf)
}

func (tf Timeframe) String() string {
	return string(tf)
}

func timeframeValues() []string {
	out := make([]string, 0, 4)
	for _, tf := range Timeframes() {
		out = append(out, string(tf))
	}
	return out
}
