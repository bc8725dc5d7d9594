// Package format renders backend values for Vietnamese-locale pages.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Vietnamese)

// VND renders an amount in Vietnamese đồng with locale digit grouping,
// e.g. 50000 -> "50.000 ₫".
func VND(amount int64) string {
	return printer.Sprintf("%v ₫", number.Decimal(amount))
}
