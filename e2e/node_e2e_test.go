//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vibast-solutions/node-go-pinelabs/app/pinelabs"
	"github.com/vibast-solutions/node-go-pinelabs/app/service"
	"github.com/vibast-solutions/node-go-pinelabs/app/types"
)

const (
	e2eClientID     = "e2e-client-id"
	e2eClientSecret = "e2e-client-secret"
	e2eAccessToken  = "e2e-access-token"
)

// newVendorStub serves the token and data endpoints the node talks to,
// enforcing the same auth handshake the real API does.
func newVendorStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["client_id"] != e2eClientID || body["client_secret"] != e2eClientSecret || body["grant_type"] != "client_credentials" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": "UNAUTHORIZED", "message": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": e2eAccessToken, "expires_at": time.Now().Add(time.Hour).UTC().Format(time.RFC3339)})
	})

	requireBearer := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+e2eAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": "UNAUTHORIZED", "message": "missing bearer token"})
			return false
		}
		return true
	}

	mux.HandleFunc("POST /pay/v1/paymentlink", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["merchant_payment_link_reference"] == "dup_reference" {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": "DUPLICATE_REQUEST", "message": "payment link reference already used"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"payment_link_id": "pl-v1-e2e-1",
			"payment_link":    "https://pluralonline.example/pl-v1-e2e-1",
			"amount":          body["amount"],
		})
	})

	mux.HandleFunc("GET /pay/v1/paymentlink/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"payment_link_id": r.PathValue("id"),
			"status":          "ACTIVE",
			"amount":          map[string]any{"value": 10000, "currency": "INR"},
		})
	})

	mux.HandleFunc("POST /checkout/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order_id":     "v1-e2e-order-1",
			"token":        "order-token",
			"order_amount": body["order_amount"],
		})
	})

	mux.HandleFunc("GET /pay/v1/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order_id":     r.PathValue("id"),
			"status":       "PROCESSED",
			"order_amount": map[string]any{"value": 550000, "currency": "INR"},
		})
	})

	return httptest.NewServer(mux)
}

func newNodeServiceForE2E(t *testing.T, serverURL string) *service.NodeService {
	t.Helper()
	client := pinelabs.NewClient(types.Credentials{
		ClientID:     e2eClientID,
		ClientSecret: e2eClientSecret,
		Environment:  "uat",
	}, 5*time.Second)
	client.SetBaseURL(serverURL)
	return service.NewNodeService(client)
}

func TestPaymentLinkLifecycle(t *testing.T) {
	srv := newVendorStub(t)
	defer srv.Close()
	svc := newNodeServiceForE2E(t, srv.URL)

	results, err := svc.Execute(context.Background(), service.ExecuteInput{
		Operation: types.OperationCreatePaymentLink,
		Items: []types.Parameters{{
			"amount":                       float64(10000),
			"currency":                     "INR",
			"merchantPaymentLinkReference": "e2e_link_1",
			"customerEmail":                "customer@example.com",
			"customerFirstName":            "Asha",
			"customerLastName":             "Rao",
			"customerMobileNumber":         "9876543210",
		}},
	})
	if err != nil {
		t.Fatalf("create payment link: %v", err)
	}
	created := results[0].JSON
	if created["payment_link_id"] != "pl-v1-e2e-1" {
		t.Fatalf("unexpected create response %v", created)
	}
	if created["_amount_formatted"] != "Rs 100.00" {
		t.Fatalf("expected enriched amount, got %v", created["_amount_formatted"])
	}

	results, err = svc.Execute(context.Background(), service.ExecuteInput{
		Operation: types.OperationGetPaymentLink,
		Items:     []types.Parameters{{"paymentLinkId": "pl-v1-e2e-1"}},
	})
	if err != nil {
		t.Fatalf("get payment link: %v", err)
	}
	if results[0].JSON["status"] != "ACTIVE" {
		t.Fatalf("unexpected get response %v", results[0].JSON)
	}
}

func TestOrderLifecycle(t *testing.T) {
	srv := newVendorStub(t)
	defer srv.Close()
	svc := newNodeServiceForE2E(t, srv.URL)

	results, err := svc.Execute(context.Background(), service.ExecuteInput{
		Operation: types.OperationCreateOrder,
		Items: []types.Parameters{{
			"orderAmount":            float64(550000),
			"currency":               "INR",
			"merchantOrderReference": "e2e_order_1",
		}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if results[0].JSON["order_id"] != "v1-e2e-order-1" {
		t.Fatalf("unexpected create response %v", results[0].JSON)
	}

	results, err = svc.Execute(context.Background(), service.ExecuteInput{
		Operation: types.OperationGetOrder,
		Items:     []types.Parameters{{"orderId": "v1-e2e-order-1"}},
	})
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	fetched := results[0].JSON
	if fetched["status"] != "PROCESSED" {
		t.Fatalf("unexpected get response %v", fetched)
	}
	if fetched["_amount_formatted"] != "Rs 5,500.00" {
		t.Fatalf("expected enriched amount, got %v", fetched["_amount_formatted"])
	}
}

func TestVendorRejectionSurfacesDetails(t *testing.T) {
	srv := newVendorStub(t)
	defer srv.Close()
	svc := newNodeServiceForE2E(t, srv.URL)

	_, err := svc.Execute(context.Background(), service.ExecuteInput{
		Operation: types.OperationCreatePaymentLink,
		Items: []types.Parameters{{
			"amount":                       float64(10000),
			"currency":                     "INR",
			"merchantPaymentLinkReference": "dup_reference",
			"customerEmail":                "customer@example.com",
			"customerFirstName":            "Asha",
			"customerLastName":             "Rao",
			"customerMobileNumber":         "9876543210",
		}},
	})
	if err == nil {
		t.Fatal("expected duplicate reference to fail")
	}
	if !strings.Contains(err.Error(), "DUPLICATE_REQUEST") || !strings.Contains(err.Error(), "already used") {
		t.Fatalf("expected vendor details in %q", err.Error())
	}
}

func TestBadCredentialsFailTokenExchange(t *testing.T) {
	srv := newVendorStub(t)
	defer srv.Close()

	client := pinelabs.NewClient(types.Credentials{
		ClientID:     "wrong-id",
		ClientSecret: "wrong-secret",
		Environment:  "uat",
	}, 5*time.Second)
	client.SetBaseURL(srv.URL)
	svc := service.NewNodeService(client)

	_, err := svc.Execute(context.Background(), service.ExecuteInput{
		Operation: types.OperationGetOrder,
		Items:     []types.Parameters{{"orderId": "v1-e2e-order-1"}},
	})
	if err == nil {
		t.Fatal("expected token exchange to fail")
	}
	if !strings.Contains(err.Error(), "Client ID and Secret") {
		t.Fatalf("expected credential guidance in %q", err.Error())
	}
}
