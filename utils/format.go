package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatThousands renders a non-negative value rounded to the nearest integer
// with comma grouping, e.g. 1234567.8 → "1,234,568".
func FormatThousands(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}

	if neg {
		return "-" + s
	}
	return s
}

// FormatCurrency renders a dollar amount with comma grouping and no cents,
// e.g. 450000 → "$450,000".
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-$" + FormatThousands(-v)
	}
	return "$" + FormatThousands(v)
}

// FormatCurrencyCents is FormatCurrency with two decimal places kept.
func FormatCurrencyCents(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("%s$%s.%02d", sign, FormatThousands(float64(cents/100)), cents%100)
}
