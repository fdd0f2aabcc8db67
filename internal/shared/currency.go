package shared

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount with grouped thousands, two decimal
// places and a trailing currency label, e.g. "12,345.67 SAR".
func FormatCurrency(amount float64, currency string) string {
	formatted := groupThousands(fmt.Sprintf("%.2f", amount))
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}

func groupThousands(value string) string {
	sign := ""
	if strings.HasPrefix(value, "-") {
		sign = "-"
		value = value[1:]
	}

	intPart, fracPart, _ := strings.Cut(value, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
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
	return sign + b.String() + "." + fracPart
}
