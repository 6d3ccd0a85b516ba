package retail

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAuthorityLabel(t *testing.T) {
	tests := []struct {
		flag int
		want string
	}{
		{1, "TRUE"},
		{0, "FALSE"},
		{2, "FALSE"},
		{7, "FALSE"},
		{-1, "FALSE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AuthorityLabel(tt.flag), "flag %d", tt.flag)
	}
}

func TestAuthorityFlag(t *testing.T) {
	assert.Equal(t, 1, AuthorityFlag("TRUE"))
	assert.Equal(t, 1, AuthorityFlag(" TRUE "))
	assert.Equal(t, 0, AuthorityFlag("FALSE"))
	assert.Equal(t, 0, AuthorityFlag("true"))
	assert.Equal(t, 0, AuthorityFlag(""))
}

func TestAbsTimezoneDropsSign(t *testing.T) {
	assert.Equal(t, 5, AbsTimezone(-5))
	assert.Equal(t, 5, AbsTimezone(5))
	assert.Equal(t, 0, AbsTimezone(0))
	assert.Equal(t, 12, AbsTimezone(-12))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "2024-03-09", formatDate(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12.50", formatMoney(decimal.RequireFromString("12.5")))
	assert.Equal(t, "30.00", formatMoney(decimal.NewFromInt(30)))
}
