// Package report renders simulation outcomes for human consumption:
// currency formatting, a markdown risk brief, and its HTML form.
package report

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a monetary amount with a thousands-grouped
// two-decimal mantissa and the currency's symbol. Unknown codes fall
// back to a trailing code suffix.
func FormatCurrency(amount float64, currency string) string {
	formatted := groupThousands(fmt.Sprintf("%.2f", amount))
	switch currency {
	case "GBP":
		return "£" + formatted
	case "EUR":
		return "€" + formatted
	case "USD":
		return "$" + formatted
	default:
		return formatted + " " + currency
	}
}

// groupThousands inserts commas into the integer part of a fixed-point
// decimal string, preserving any leading sign.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
