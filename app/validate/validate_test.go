package validate

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAmountBounds(t *testing.T) {
	cases := []struct {
		value int64
		valid bool
	}{
		{99, false},
		{100, true},
		{10000, true},
		{100000000, true},
		{100000001, false},
		{0, false},
		{-100, false},
	}
	for _, tc := range cases {
		err := Amount(tc.value)
		if tc.valid && err != nil {
			t.Fatalf("Amount(%d): expected valid, got %v", tc.value, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("Amount(%d): expected error", tc.value)
		}
	}

	var vErr *ValidationError
	if err := Amount(50); !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	} else if vErr.Field != "amount" {
		t.Fatalf("expected field amount, got %q", vErr.Field)
	}
}

func TestMerchantReference(t *testing.T) {
	valid := []string{"a", "order_1", "ORDER-42", "A1-b2_C3", strings.Repeat("x", 50)}
	for _, ref := range valid {
		if err := MerchantReference(ref); err != nil {
			t.Fatalf("MerchantReference(%q): expected valid, got %v", ref, err)
		}
	}

	invalid := []string{"", strings.Repeat("x", 51), "order 1", "order#1", "ref@", "παλ"}
	for _, ref := range invalid {
		if err := MerchantReference(ref); err == nil {
			t.Fatalf("MerchantReference(%q): expected error", ref)
		}
	}
}

func TestIDValidators(t *testing.T) {
	if err := PaymentLinkID("pl-v1-250306082755-aa-uT0noy"); err != nil {
		t.Fatalf("expected valid payment link id, got %v", err)
	}
	if err := PaymentLinkID(""); err == nil {
		t.Fatal("expected error for empty payment link id")
	}
	if err := PaymentLinkID(strings.Repeat("x", 51)); err == nil {
		t.Fatal("expected error for over-long payment link id")
	}

	if err := OrderID("v1-4405071524-aa-qlAtAf"); err != nil {
		t.Fatalf("expected valid order id, got %v", err)
	}
	if err := OrderID(""); err == nil {
		t.Fatal("expected error for empty order id")
	}
	if err := OrderID(strings.Repeat("x", 51)); err == nil {
		t.Fatal("expected error for over-long order id")
	}
}

func TestExpireBy(t *testing.T) {
	if err := ExpireBy(""); err != nil {
		t.Fatalf("expected unset expire_by to pass, got %v", err)
	}
	if err := ExpireBy("not-a-timestamp"); err == nil {
		t.Fatal("expected error for unparseable expire_by")
	}

	soon := time.Now().AddDate(0, 0, 30).Format(time.RFC3339)
	if err := ExpireBy(soon); err != nil {
		t.Fatalf("expected expire_by within window to pass, got %v", err)
	}

	tooFar := time.Now().AddDate(0, 0, 181).Format(time.RFC3339)
	if err := ExpireBy(tooFar); err == nil {
		t.Fatal("expected error for expire_by beyond 180 days")
	}
}
