package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var ac = accounting.Accounting{Symbol: "KSh ", Precision: 2, Thousand: ","}

// Price renders a decimal amount for display, e.g. "KSh 1,250.00".
func Price(amount decimal.Decimal) string {
	return ac.FormatMoneyDecimal(amount)
}
