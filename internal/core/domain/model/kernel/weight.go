package kernel

import (
	"strings"

	"github.com/shopspring/decimal"

	"labeling/internal/pkg/errs"
)

// weightScale is the number of decimal places carried by gross and per-volume
// weights. Two places match what fits on a printed label.
const weightScale = 2

// Weight is a non-negative gross weight in kilograms with two-decimal
// precision. It is a value object; the zero value is a valid zero weight.
//
// Arithmetic is exact: Weight is backed by a decimal, not a float, so the sum
// of the per-volume shares of an evenly split invoice weight stays within
// rounding tolerance of the declared total.
type Weight struct {
	kg decimal.Decimal
}

// ZeroWeight returns a weight of 0.00 Kg.
func ZeroWeight() Weight {
	return Weight{}
}

// NewWeight creates a Weight from a decimal kilogram amount.
// Negative amounts are rejected.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), "0", "unbounded")
	}
	return Weight{kg: kg.Round(weightScale)}, nil
}

// ParseWeight parses a locale-formatted weight string into a Weight.
//
// Both Brazilian and plain formats are accepted: "1.234,56" (dot thousands,
// comma decimal), "9,60" and "9.60" all parse. A trailing "kg" unit marker is
// tolerated. Empty or unparsable input is an error; callers that want the
// lenient default-to-zero behavior use ParseWeightOrZero.
func ParseWeight(s string) (Weight, error) {
	normalized := strings.TrimSpace(s)
	normalized = strings.TrimSuffix(strings.ToLower(normalized), "kg")
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return Weight{}, errs.NewValueIsRequiredError("weight")
	}

	if strings.Contains(normalized, ",") {
		// Comma is the decimal separator; dots are thousands separators.
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
	}

	kg, err := decimal.NewFromString(normalized)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}

	return NewWeight(kg)
}

// ParseWeightOrZero parses like ParseWeight but degrades to 0.00 Kg on any
// failure. Declared invoice weights are frequently absent or malformed and an
// unweighed volume is still a volume.
func ParseWeightOrZero(s string) Weight {
	w, err := ParseWeight(s)
	if err != nil {
		return ZeroWeight()
	}
	return w
}

// Split divides the weight evenly across n parts, rounding each share to two
// decimal places. A non-positive n yields the whole weight back.
func (w Weight) Split(n int) Weight {
	if n <= 0 {
		return w
	}
	return Weight{kg: w.kg.Div(decimal.NewFromInt(int64(n))).Round(weightScale)}
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{kg: w.kg.Add(other.kg)}
}

// Kilograms returns the underlying decimal amount.
func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

// IsZero reports whether the weight is exactly zero.
func (w Weight) IsZero() bool {
	return w.kg.IsZero()
}

// IsEqual compares two weights for numeric equality.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}

// String renders the weight for persistence and wire transfer: "3.20".
func (w Weight) String() string {
	return w.kg.StringFixed(weightScale)
}

// Display renders the weight the way labels show it: "3.20 Kg".
func (w Weight) Display() string {
	return w.String() + " Kg"
}
