package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for package-level variable
// initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// Symbol returns the display symbol for the currency, falling back to the code.
func (c Currency) Symbol() string {
	if s, ok := symbols[c.code]; ok {
		return s
	}
	return c.code
}

// Common currencies.
var (
	BRL = MustCurrency("BRL")
	USD = MustCurrency("USD")
	EUR = MustCurrency("EUR")
)

var symbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
}

// Money represents an immutable monetary amount with currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New creates a Money value from a decimal amount and currency.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() Currency {
	return m.currency
}

// Multiply returns m multiplied by the given factor.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Display formats the value for people, for example "R$ 1500.00".
func (m Money) Display() string {
	return fmt.Sprintf("%s %s", m.currency.Symbol(), m.amount.StringFixed(2))
}

// String formats the Money value as "<amount> <currency>", for example "100.0000 BRL".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(4), m.currency.Code())
}
