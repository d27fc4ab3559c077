package domain

import "strings"

// Currency is a 3-letter uppercase ISO 4217 code.
type Currency struct {
	value string
}

func NewCurrency(raw string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 3 {
		return Currency{}, NewValidationError("currency", "currency must be a 3-letter ISO code")
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return Currency{}, NewValidationError("currency", "currency must be a 3-letter ISO code")
		}
	}
	return Currency{value: code}, nil
}

// Known-valid codes used as defaults, bypassing validation.

func BRL() Currency { return Currency{value: "BRL"} }
func USD() Currency { return Currency{value: "USD"} }
func EUR() Currency { return Currency{value: "EUR"} }

// RestoreCurrency wraps an already-validated code loaded from the store.
func RestoreCurrency(code string) Currency {
	return Currency{value: code}
}

func (c Currency) Value() string {
	return c.value
}

func (c Currency) Equals(other Currency) bool {
	return c.value == other.value
}

func (c Currency) String() string {
	return c.value
}
