package domain

import (
	"math"
	"strconv"
)

// Price is a non-negative monetary amount rounded to 2 decimal places at
// construction.
type Price struct {
	value float64
}

func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Price{}, NewValidationError("price", "price must be a non-negative number")
	}
	return Price{value: math.Round(v*100) / 100}, nil
}

// RestorePrice wraps an already-rounded value loaded from the store.
func RestorePrice(v float64) Price {
	return Price{value: v}
}

func (p Price) Value() float64 {
	return p.value
}

func (p Price) Equals(other Price) bool {
	return p.value == other.value
}

func (p Price) String() string {
	return strconv.FormatFloat(p.value, 'f', 2, 64)
}
