package mapper

import (
	"testing"
	"time"
)

func TestFormatAmountINR(t *testing.T) {
	cases := []struct {
		paisa int64
		want  string
	}{
		{10000, "Rs 100.00"},
		{100, "Rs 1.00"},
		{150, "Rs 1.50"},
		{123456, "Rs 1,234.56"},
		{100000000, "Rs 10,00,000.00"},
		{12345678901, "Rs 12,34,56,789.01"},
		{0, "Rs 0.00"},
		{-10050, "Rs -100.50"},
	}
	for _, tc := range cases {
		if got := FormatAmountINR(tc.paisa); got != tc.want {
			t.Fatalf("FormatAmountINR(%d) = %q, want %q", tc.paisa, got, tc.want)
		}
	}
}

func TestEnrichAddsFormattedAmountAndAPIInfo(t *testing.T) {
	resp := map[string]any{
		"payment_link_id": "pl-1",
		"amount":          map[string]any{"value": float64(10000), "currency": "INR"},
	}

	out := Enrich(resp, "/pay/v1/paymentlink", "https://developer.pinelabsonline.com/reference/payment-link-create", "amount")

	if out["_amount_formatted"] != "Rs 100.00" {
		t.Fatalf("unexpected formatted amount %v", out["_amount_formatted"])
	}
	info, ok := out["_api_info"].(map[string]any)
	if !ok {
		t.Fatalf("expected _api_info map, got %T", out["_api_info"])
	}
	if info["endpoint"] != "/pay/v1/paymentlink" {
		t.Fatalf("unexpected endpoint %v", info["endpoint"])
	}
	if info["documentation"] != "https://developer.pinelabsonline.com/reference/payment-link-create" {
		t.Fatalf("unexpected documentation %v", info["documentation"])
	}
	if _, err := time.Parse(time.RFC3339, info["timestamp"].(string)); err != nil {
		t.Fatalf("expected RFC3339 timestamp, got %v", info["timestamp"])
	}

	// The input response must not be mutated.
	if _, ok := resp["_api_info"]; ok {
		t.Fatal("expected input response to stay untouched")
	}
}

func TestEnrichWithoutAmountSkipsFormatting(t *testing.T) {
	out := Enrich(map[string]any{"status": "ACTIVE"}, "/checkout/v1/orders", "doc", "order_amount")
	if _, ok := out["_amount_formatted"]; ok {
		t.Fatal("expected no formatted amount without an amount value")
	}
	if out["status"] != "ACTIVE" {
		t.Fatal("expected vendor fields to carry through")
	}
}

func TestEnrichNeverOverwritesVendorKeys(t *testing.T) {
	resp := map[string]any{
		"_api_info":         "vendor-owned",
		"_amount_formatted": "vendor-owned",
		"order_amount":      map[string]any{"value": float64(5000)},
	}

	out := Enrich(resp, "/checkout/v1/orders", "doc", "order_amount")
	if out["_api_info"] != "vendor-owned" {
		t.Fatalf("expected vendor _api_info preserved, got %v", out["_api_info"])
	}
	if out["_amount_formatted"] != "vendor-owned" {
		t.Fatalf("expected vendor _amount_formatted preserved, got %v", out["_amount_formatted"])
	}
}
