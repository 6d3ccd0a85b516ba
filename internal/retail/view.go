package retail

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Row is one rendered record: field name to display value.
type Row map[string]interface{}

// AuthorityLabel renders a 0/1 authority flag. Only 1 is "TRUE".
func AuthorityLabel(flag int) string {
	if flag == 1 {
		return "TRUE"
	}
	return "FALSE"
}

// AuthorityFlag is the inverse used on form input.
func AuthorityFlag(label string) int {
	if strings.TrimSpace(label) == "TRUE" {
		return 1
	}
	return 0
}

// AbsTimezone drops the sign of a UTC offset for display, so -5 and 5 both
// render as 5.
func AbsTimezone(offset int) int {
	if offset < 0 {
		return -offset
	}
	return offset
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
