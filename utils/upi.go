package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BuildUPILink renders the UPI deep link scheme:
//
//	upi://pay?pa=<payee>&pn=<name>&am=<amount>&cu=<currency>&tn=<note>
//
// Values are emitted verbatim. Percent-encoding would turn "shop@upi" into
// "shop%40upi", which scanner apps do not accept, so url.Values must not be
// used here. The amount is always rendered with two decimals.
func BuildUPILink(payeeAddress, payeeName string, amount decimal.Decimal, currency, note string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s&tn=%s",
		payeeAddress, payeeName, amount.StringFixed(2), currency, note)
}
