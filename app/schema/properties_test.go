package schema

import (
	"encoding/json"
	"testing"

	"github.com/vibast-solutions/node-go-pinelabs/app/types"
)

func findProperty(props []Property, name string, operation string) *Property {
	for i := range props {
		p := &props[i]
		if p.Name != name {
			continue
		}
		if operation == "" {
			return p
		}
		if p.DisplayWhen == nil {
			continue
		}
		for _, op := range p.DisplayWhen.Operation {
			if op == operation {
				return p
			}
		}
	}
	return nil
}

func TestNodePropertiesCoverAllOperations(t *testing.T) {
	props := NodeProperties()

	required := map[string][]string{
		types.OperationCreatePaymentLink: {
			"amount", "currency", "merchantPaymentLinkReference",
			"customerEmail", "customerFirstName", "customerLastName", "customerMobileNumber",
		},
		types.OperationCreateOrder:    {"orderAmount", "currency", "merchantOrderReference"},
		types.OperationGetOrder:       {"orderId"},
		types.OperationGetPaymentLink: {"paymentLinkId"},
	}
	for operation, names := range required {
		for _, name := range names {
			p := findProperty(props, name, operation)
			if p == nil {
				t.Fatalf("missing property %q for operation %q", name, operation)
			}
			if !p.Required {
				t.Fatalf("property %q for operation %q should be required", name, operation)
			}
		}
	}
}

func TestAmountPropertiesCarryLimits(t *testing.T) {
	props := NodeProperties()
	for _, name := range []string{"amount", "orderAmount"} {
		p := findProperty(props, name, "")
		if p == nil {
			t.Fatalf("missing %q property", name)
		}
		if p.MinValue != 100 || p.MaxValue != 100000000 {
			t.Fatalf("%q limits = [%d, %d], want [100, 100000000]", name, p.MinValue, p.MaxValue)
		}
		if p.Default != types.DefaultAmount {
			t.Fatalf("%q default = %v, want %d", name, p.Default, types.DefaultAmount)
		}
	}
}

func TestPaymentMethodOptionsMatchEnum(t *testing.T) {
	p := allowedPaymentMethodsProperty()
	if len(p.Options) != len(types.PaymentMethods) {
		t.Fatalf("expected %d options, got %d", len(types.PaymentMethods), len(p.Options))
	}
	for i, method := range types.PaymentMethods {
		if p.Options[i].Value != method {
			t.Fatalf("option %d = %q, want %q", i, p.Options[i].Value, method)
		}
	}
}

func TestCredentialProperties(t *testing.T) {
	creds := CredentialProperties()
	env := findProperty(creds, "environment", "")
	if env == nil || env.Default != "uat" {
		t.Fatalf("expected environment credential defaulting to uat, got %+v", env)
	}
	for _, name := range []string{"clientId", "clientSecret"} {
		p := findProperty(creds, name, "")
		if p == nil || !p.Required {
			t.Fatalf("expected required credential %q, got %+v", name, p)
		}
	}
	secret := findProperty(creds, "clientSecret", "")
	if secret.Type != "password" {
		t.Fatalf("client secret should render masked, got type %q", secret.Type)
	}
}

func TestDescribeSerializes(t *testing.T) {
	data, err := json.Marshal(Describe())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["name"] != "pineLabsOnline" {
		t.Fatalf("unexpected node name %v", decoded["name"])
	}
	if _, ok := decoded["properties"].([]any); !ok {
		t.Fatalf("expected properties array, got %T", decoded["properties"])
	}
}
