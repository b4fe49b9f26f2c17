// Package words renders monetary amounts as words for legal documents.
package words

import (
	"fmt"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

// AmountInWords converts an amount to its written-out form, e.g.
// 1800 riyals -> "one thousand eight hundred riyals". Fractional units of a
// 3-decimal currency are appended as "and N/1000".
func AmountInWords(amount decimal.Decimal, currency string) string {
	whole := amount.IntPart()
	millis := amount.Shift(3).IntPart() - whole*1000

	text := num2words.Convert(int(whole))
	if currency != "" {
		text += " " + currency
	}
	if millis > 0 {
		text += fmt.Sprintf(" and %d/1000", millis)
	}
	return text
}
