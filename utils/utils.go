package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/now"
)

// SafeInt coerces a form value to an int, falling back to def on any parse
// failure.
func SafeInt(value string, def int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// SafeAmount coerces a form value to a non-negative amount. Negative
// submissions are clamped to zero so the orders check constraint can never
// trip from form input.
func SafeAmount(value string, def int) int {
	n := SafeInt(value, def)
	if n < 0 {
		return 0
	}
	return n
}

// NewCustomerCode generates a business code from the last six digits of
// the current epoch seconds, e.g. CUST839021.
func NewCustomerCode() string {
	epoch := strconv.FormatInt(time.Now().Unix(), 10)
	return "CUST" + epoch[len(epoch)-6:]
}

// NewOrderID generates a business order id from the current timestamp,
// e.g. ORD20260828-154502.
func NewOrderID() string {
	return "ORD" + time.Now().Format("20060102-150405")
}

// ParseDate parses a YYYY-MM-DD form value.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// Today returns the current date truncated to midnight.
func Today() time.Time {
	return now.BeginningOfDay()
}
