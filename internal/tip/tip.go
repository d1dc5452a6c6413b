// Package tip holds the bill arithmetic: tip amount, per-person total,
// slider-to-percentage mapping and bill parsing. Everything here is pure.
package tip

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinSplit and MaxSplit bound the number of people sharing a bill.
	MinSplit = 1
	MaxSplit = 100

	// NoTipThreshold: bills at or below this amount get no tip.
	NoTipThreshold = 1.0
)

// ErrInvalidAmount is returned by ParseBill for text that is not a usable amount.
var ErrInvalidAmount = errors.New("invalid bill amount")

// ComputeTip returns the tip for bill at pct percent.
// Bills at or below NoTipThreshold always yield 0.
func ComputeTip(bill float64, pct int) float64 {
	if bill <= NoTipThreshold {
		return 0
	}
	return bill * float64(pct) / 100
}

// ComputeTotalPerPerson returns (bill + tip) / split.
// Callers must keep split >= MinSplit; see ClampSplit.
func ComputeTotalPerPerson(bill float64, pct int, split int) float64 {
	return (bill + ComputeTip(bill, pct)) / float64(split)
}

// Percentage maps a normalized slider position to a whole tip percentage.
// Positions outside [0, 1] are clamped first.
func Percentage(position float64) int {
	return int(math.Round(ClampPosition(position) * 100))
}

// ClampPosition clamps a slider position to [0, 1]. NaN maps to 0.
func ClampPosition(position float64) float64 {
	switch {
	case math.IsNaN(position), position < 0:
		return 0
	case position > 1:
		return 1
	}
	return position
}

// ClampSplit clamps n to [MinSplit, MaxSplit].
func ClampSplit(n int) int {
	return min(max(n, MinSplit), MaxSplit)
}

// ParseBill parses user-entered bill text. Surrounding whitespace is ignored.
// Empty, non-numeric, negative and non-finite input is rejected with an error
// wrapping ErrInvalidAmount.
func ParseBill(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidAmount, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return v, nil
}
