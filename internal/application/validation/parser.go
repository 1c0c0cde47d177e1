package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prototypevg/VeriGuard-AI-app/pkg/money"
)

var leadingInt = regexp.MustCompile(`^\s*[-+]?\d+`)

// Parser converts raw strings into typed values.
type Parser struct {
	strict bool
}

// NewParser returns a lenient parser, or a strict one when strict is true.
func NewParser(strict bool) Parser {
	return Parser{strict: strict}
}

// Strict reports whether the parser rejects malformed values.
func (p Parser) Strict() bool {
	return p.strict
}

// Amount parses a monetary value such as "R$ 1.500,00". Leniently, anything
// other than digits, dots and minus signs is dropped and an unreadable value
// becomes zero.
func (p Parser) Amount(field, raw string) (decimal.Decimal, error) {
	if !p.strict {
		return money.CoerceAmount(raw), nil
	}

	d, err := money.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, &InvalidInputError{Field: field, Value: raw, Reason: "not a number"}
	}
	if d.IsNegative() {
		return decimal.Zero, &InvalidInputError{Field: field, Value: raw, Reason: "must not be negative"}
	}
	return d, nil
}

// Count parses a non-negative integer such as a number of months. Leniently,
// the leading integer is used and an unreadable value becomes zero.
func (p Parser) Count(field, raw string) (int, error) {
	if !p.strict {
		n, err := strconv.Atoi(strings.TrimSpace(leadingInt.FindString(raw)))
		if err != nil {
			return 0, nil
		}
		return n, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		reason := "not an integer"
		if errors.Is(err, strconv.ErrRange) {
			reason = "out of range"
		}
		return 0, &InvalidInputError{Field: field, Value: raw, Reason: reason}
	}
	if n < 0 {
		return 0, &InvalidInputError{Field: field, Value: raw, Reason: "must not be negative"}
	}
	return n, nil
}

// TimeOfDay checks a 24-hour HH:MM string. The lenient parser passes the
// value through untouched; the scorer reads whatever hour it can find.
func (p Parser) TimeOfDay(raw string) (string, error) {
	if !p.strict {
		return raw, nil
	}

	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return "", &InvalidTimeFormatError{Value: raw}
	}
	return t.Format("15:04"), nil
}
