package models

import "fmt"

// Money is an amount in minor currency units (cents for USD).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Add returns the sum. Currency of the receiver wins when the other
// side is the zero value.
func (m Money) Add(other Money) Money {
	cur := m.Currency
	if cur == "" {
		cur = other.Currency
	}
	return Money{Amount: m.Amount + other.Amount, Currency: cur}
}

// Format renders the amount for display, e.g. 185000 -> "$1,850.00".
func (m Money) Format() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	dollars := amount / 100
	cents := amount % 100

	// Group the dollar part with thousands separators.
	s := fmt.Sprintf("%d", dollars)
	var grouped []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}

	symbol := "$"
	if m.Currency != "" && m.Currency != "USD" {
		symbol = m.Currency + " "
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, grouped, cents)
}
