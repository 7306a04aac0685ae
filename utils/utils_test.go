package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeInt(t *testing.T) {
	assert.Equal(t, 42, SafeInt("42", 0))
	assert.Equal(t, 0, SafeInt("", 0))
	assert.Equal(t, 7, SafeInt("not-a-number", 7))
	assert.Equal(t, -3, SafeInt("-3", 0))
}

func TestSafeAmountClampsNegatives(t *testing.T) {
	assert.Equal(t, 999, SafeAmount("999", 0))
	assert.Equal(t, 0, SafeAmount("-500", 0))
	assert.Equal(t, 0, SafeAmount("-1", 12))
	assert.Equal(t, 12, SafeAmount("junk", 12))
}

func TestNewCustomerCode(t *testing.T) {
	code := NewCustomerCode()
	assert.Regexp(t, regexp.MustCompile(`^CUST\d{6}$`), code)
}

func TestNewOrderID(t *testing.T) {
	id := NewOrderID()
	assert.Regexp(t, regexp.MustCompile(`^ORD\d{8}-\d{6}$`), id)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("28-08-2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestTodayIsMidnight(t *testing.T) {
	d := Today()
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
	assert.Equal(t, 0, d.Second())
}
