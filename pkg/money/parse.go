package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned by ParseAmount when the text is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

var (
	nonNumericRe   = regexp.MustCompile(`[^0-9.\-]+`)
	leadingFloatRe = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)
	dotThousandsRe = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
	plainDecimalRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// Longest symbols first so "R$" is not mistaken for "$".
var strippedSymbols = []string{"R$", "US$", "$", "€"}

// CoerceAmount converts free text into an amount the permissive way the
// dashboard forms always did: every character other than digits, "." and
// "-" is dropped, the longest numeric prefix is read, and anything that is
// not a number becomes zero. It never fails.
//
// Brazilian notation is not understood: "R$ 1.234,56" coerces to 1.23456.
// Use ParseAmount when that matters.
func CoerceAmount(raw string) decimal.Decimal {
	m := leadingFloatRe.FindString(nonNumericRe.ReplaceAllString(raw, ""))
	m = strings.TrimSuffix(m, ".")
	if m == "" || m == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmount reads an amount typed by a person, accepting an optional
// currency symbol and either Brazilian ("1.234,56") or plain ("1234.56")
// notation. When both separators appear, the last one is the decimal mark.
// A dot followed by groups of exactly three digits ("1.500") is read as a
// thousands separator.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	for _, sym := range strippedSymbols {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimPrefix(s, sym)
			break
		}
	}
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	case dotThousandsRe.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	if !plainDecimalRe.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, raw, err)
	}
	return d, nil
}
