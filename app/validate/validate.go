// Package validate enforces the constraints the Pine Labs API documents for
// request fields. Every check is a pure function returning a *ValidationError;
// wrapping into host-facing item errors happens at the dispatcher boundary.
package validate

import (
	"fmt"
	"time"
)

const (
	MinAmount            = int64(100)
	MaxAmount            = int64(100000000)
	MinMerchantRefLength = 1
	MaxMerchantRefLength = 50
	MaxPaymentLinkIDLen  = 50
	MaxOrderIDLen        = 50
	MaxExpireDays        = 180
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Amount checks a top-level payable amount in paisa.
func Amount(value int64) error {
	if value < MinAmount {
		return invalid("amount", "Amount must be at least Rs 1 (100 paisa)")
	}
	if value > MaxAmount {
		return invalid("amount", "Amount must not exceed Rs 10,00,000 (100000000 paisa)")
	}
	return nil
}

// MerchantReference checks merchant payment link / order references.
func MerchantReference(ref string) error {
	if len(ref) < MinMerchantRefLength || len(ref) > MaxMerchantRefLength {
		return invalid("merchant_reference", "Merchant reference must be 1-50 characters, only A-Z, a-z, 0-9, - and _ allowed")
	}
	for _, c := range ref {
		if !isReferenceChar(c) {
			return invalid("merchant_reference", "Merchant reference must be 1-50 characters, only A-Z, a-z, 0-9, - and _ allowed")
		}
	}
	return nil
}

func isReferenceChar(c rune) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}

func PaymentLinkID(id string) error {
	if id == "" || len(id) > MaxPaymentLinkIDLen {
		return invalid("payment_link_id", "Payment Link ID is required and must not exceed 50 characters")
	}
	return nil
}

func OrderID(id string) error {
	if id == "" || len(id) > MaxOrderIDLen {
		return invalid("order_id", "Order ID is required and must not exceed 50 characters")
	}
	return nil
}

// ExpireBy accepts an unset value. A set value must parse as RFC 3339 and lie
// no more than 180 days past the current instant, evaluated at call time.
func ExpireBy(expireBy string) error {
	if expireBy == "" {
		return nil
	}
	expireAt, err := time.Parse(time.RFC3339, expireBy)
	if err != nil {
		return invalid("expire_by", "expire_by must be a valid ISO 8601 timestamp")
	}
	if expireAt.After(time.Now().AddDate(0, 0, MaxExpireDays)) {
		return invalid("expire_by", "Expiry timestamp must be within 180 days from now")
	}
	return nil
}
