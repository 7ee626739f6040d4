package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildUPILink(t *testing.T) {
	link := BuildUPILink("shop@upi", "SreeRajalakshmiEnterprises", decimal.NewFromInt(360), "INR", "TeaPayment")
	assert.Equal(t, "upi://pay?pa=shop@upi&pn=SreeRajalakshmiEnterprises&am=360.00&cu=INR&tn=TeaPayment", link)
}

func TestBuildUPILinkKeepsPayeeVerbatim(t *testing.T) {
	// the @ must not be percent-encoded or scanner apps reject the link
	link := BuildUPILink("someone@okaxis", "Shop", decimal.RequireFromString("99.5"), "INR", "TeaPayment")
	assert.Contains(t, link, "pa=someone@okaxis")
	assert.Contains(t, link, "am=99.50")
	assert.NotContains(t, link, "%40")
}
