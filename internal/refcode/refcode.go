// Package refcode generates the short human-readable reference codes
// attached to orders, quote requests, and contact inquiries so customers
// and staff can refer to them in correspondence.
package refcode

import (
	"strconv"
	"strings"
	"time"
)

const (
	PrefixOrder   = "ORD"
	PrefixQuote   = "QUO"
	PrefixInquiry = "INQ"
)

// Generate returns a code of the form {PREFIX}-{base36 unix millis},
// e.g. "ORD-MK3QZ8F1". Codes are unique down to millisecond resolution;
// there is no collision detection beyond that.
func Generate(prefix string) string {
	return prefix + "-" + strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
}

// NewOrderNumber returns a reference code for a completed checkout.
func NewOrderNumber() string {
	return Generate(PrefixOrder)
}

// NewQuoteReference returns a reference code for a quote request.
func NewQuoteReference() string {
	return Generate(PrefixQuote)
}

// NewInquiryReference returns a reference code for a contact inquiry.
func NewInquiryReference() string {
	return Generate(PrefixInquiry)
}
