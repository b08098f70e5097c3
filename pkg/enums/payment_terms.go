package enums

import "fmt"

// PaymentTerms describes when the counterparty gets paid.
type PaymentTerms string

const (
	PaymentTermsPrepayment  PaymentTerms = "PREPAYMENT"
	PaymentTermsPostpayment PaymentTerms = "POSTPAYMENT"
	PaymentTermsPartial     PaymentTerms = "PARTIAL"
)

var validPaymentTerms = []PaymentTerms{
	PaymentTermsPrepayment,
	PaymentTermsPostpayment,
	PaymentTermsPartial,
}

// String implements fmt.Stringer.
func (p PaymentTerms) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentTerms.
func (p PaymentTerms) IsValid() bool {
	for _, candidate := range validPaymentTerms {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentTerms converts raw input into a PaymentTerms.
func ParsePaymentTerms(value string) (PaymentTerms, error) {
	for _, candidate := range validPaymentTerms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment terms %q", value)
}
