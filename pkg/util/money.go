package util

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySuffix is appended to every displayed value.
const CurrencySuffix = "₽"

// MoneyFormatter renders card values with locale-aware digit grouping.
type MoneyFormatter struct {
	printer *message.Printer
}

// NewMoneyFormatter builds a formatter for the given BCP 47 tag. Unknown or
// empty tags fall back to Russian.
func NewMoneyFormatter(locale string) MoneyFormatter {
	tag := language.Russian
	if locale = strings.TrimSpace(locale); locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	return MoneyFormatter{printer: message.NewPrinter(tag)}
}

// Format returns e.g. "15 000 ₽" for ru or "15,000 ₽" for en.
func (f MoneyFormatter) Format(value float64) string {
	p := f.printer
	if p == nil {
		p = message.NewPrinter(language.Russian)
	}
	return p.Sprint(number.Decimal(value, number.MaxFractionDigits(2))) + " " + CurrencySuffix
}
