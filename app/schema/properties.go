// Package schema declares the parameter and credential layout of the Pine
// Labs node as plain data. Nothing here executes; the host renders it and the
// runner serves it verbatim on its schema endpoint.
package schema

import "github.com/vibast-solutions/node-go-pinelabs/app/types"

type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DisplayWhen restricts a property to specific resource/operation selections.
type DisplayWhen struct {
	Resource  []string `json:"resource,omitempty"`
	Operation []string `json:"operation,omitempty"`
}

type Property struct {
	DisplayName string       `json:"displayName"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Default     any          `json:"default"`
	Required    bool         `json:"required,omitempty"`
	Description string       `json:"description,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	MinValue    int64        `json:"minValue,omitempty"`
	MaxValue    int64        `json:"maxValue,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Properties  []Property   `json:"properties,omitempty"`
	Multiple    bool         `json:"multiple,omitempty"`
	DisplayWhen *DisplayWhen `json:"displayWhen,omitempty"`
}

// Node bundles everything the host needs to render the integration.
type Node struct {
	DisplayName string     `json:"displayName"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Properties  []Property `json:"properties"`
	Credentials []Property `json:"credentials"`
}

func Describe() Node {
	return Node{
		DisplayName: "Pine Labs Online",
		Name:        "pineLabsOnline",
		Description: "Create and retrieve payment links and orders via the Pine Labs Online API",
		Properties:  NodeProperties(),
		Credentials: CredentialProperties(),
	}
}

func CredentialProperties() []Property {
	return []Property{
		{
			DisplayName: "Environment",
			Name:        "environment",
			Type:        "options",
			Default:     "uat",
			Description: "Select UAT for testing or Production for live transactions",
			Options: []Option{
				{Name: "UAT (Testing)", Value: "uat"},
				{Name: "Production", Value: "production"},
			},
		},
		{
			DisplayName: "Client ID",
			Name:        "clientId",
			Type:        "string",
			Default:     "",
			Required:    true,
			Placeholder: "a17ce30e-f88e-4f81-ada1-c3b4909ed232",
			Description: "Your Pine Labs Client ID",
		},
		{
			DisplayName: "Client Secret",
			Name:        "clientSecret",
			Type:        "password",
			Default:     "",
			Required:    true,
			Description: "Your Pine Labs Client Secret",
		},
	}
}

func NodeProperties() []Property {
	props := []Property{
		{
			DisplayName: "Resource",
			Name:        "resource",
			Type:        "options",
			Default:     types.ResourcePaymentLink,
			Options: []Option{
				{Name: "Payment Link", Value: types.ResourcePaymentLink},
				{Name: "Order", Value: types.ResourceOrder},
			},
		},
		{
			DisplayName: "Operation",
			Name:        "operation",
			Type:        "options",
			Default:     types.OperationCreatePaymentLink,
			DisplayWhen: &DisplayWhen{Resource: []string{types.ResourcePaymentLink}},
			Options: []Option{
				{Name: "Create Payment Link", Value: types.OperationCreatePaymentLink},
				{Name: "Get Payment Link", Value: types.OperationGetPaymentLink},
			},
		},
		{
			DisplayName: "Operation",
			Name:        "operation",
			Type:        "options",
			Default:     types.OperationCreateOrder,
			DisplayWhen: &DisplayWhen{Resource: []string{types.ResourceOrder}},
			Options: []Option{
				{Name: "Create Order", Value: types.OperationCreateOrder},
				{Name: "Get Order", Value: types.OperationGetOrder},
			},
		},
	}
	props = append(props, createPaymentLinkProperties()...)
	props = append(props, createOrderProperties()...)
	props = append(props, getOrderProperties()...)
	props = append(props, getPaymentLinkProperties()...)
	return props
}

func createPaymentLinkProperties() []Property {
	show := &DisplayWhen{Operation: []string{types.OperationCreatePaymentLink}}
	return []Property{
		{
			DisplayName: "Amount (Paisa)",
			Name:        "amount",
			Type:        "number",
			Default:     types.DefaultAmount,
			Required:    true,
			Description: "Payment amount in Paisa (100 paisa = Rs 1). Min: 100 (Rs 1), Max: 100000000 (Rs 10 lakh).",
			MinValue:    100,
			MaxValue:    100000000,
			DisplayWhen: show,
		},
		{
			DisplayName: "Currency",
			Name:        "currency",
			Type:        "string",
			Default:     types.DefaultCurrency,
			Required:    true,
			Description: "Currency type for the transaction",
			DisplayWhen: show,
		},
		{
			DisplayName: "Merchant Payment Link Reference",
			Name:        "merchantPaymentLinkReference",
			Type:        "string",
			Default:     "",
			Required:    true,
			Description: "Unique identifier for the payment link request (1-50 chars, only A-Z, a-z, 0-9, -, _)",
			Placeholder: "payment_link_12345",
			DisplayWhen: show,
		},
		{
			DisplayName: "Customer Email",
			Name:        "customerEmail",
			Type:        "string",
			Default:     "",
			Required:    true,
			Placeholder: "customer@example.com",
			Description: "Customer's email address (max 50 chars)",
			DisplayWhen: show,
		},
		{
			DisplayName: "Customer First Name",
			Name:        "customerFirstName",
			Type:        "string",
			Default:     "",
			Required:    true,
			Description: "Customer's first name (max 50 chars)",
			DisplayWhen: show,
		},
		{
			DisplayName: "Customer Last Name",
			Name:        "customerLastName",
			Type:        "string",
			Default:     "",
			Required:    true,
			Description: "Customer's last name (max 50 chars)",
			DisplayWhen: show,
		},
		{
			DisplayName: "Customer Mobile Number",
			Name:        "customerMobileNumber",
			Type:        "string",
			Default:     "",
			Required:    true,
			Placeholder: "9876543210",
			Description: "Customer's mobile number (10-20 digits)",
			DisplayWhen: show,
		},
		{
			DisplayName: "Additional Options",
			Name:        "additionalOptions",
			Type:        "collection",
			Default:     map[string]any{},
			Placeholder: "Add Option",
			DisplayWhen: show,
			Properties: []Property{
				{
					DisplayName: "Description",
					Name:        "description",
					Type:        "string",
					Default:     "",
					Description: "Description corresponding to the payment",
					Placeholder: "Payment for Order #12345",
				},
				{
					DisplayName: "Expire By",
					Name:        "expireBy",
					Type:        "dateTime",
					Default:     "",
					Description: "Expiration timestamp for the payment link (must be within 180 days from now)",
				},
				allowedPaymentMethodsProperty(),
				{
					DisplayName: "Country Code",
					Name:        "countryCode",
					Type:        "string",
					Default:     types.DefaultCountryCode,
					Description: "Country code of the mobile number",
					Placeholder: "91",
				},
				{
					DisplayName: "Customer ID",
					Name:        "customerId",
					Type:        "string",
					Default:     "",
					Description: "Unique identifier of the customer in your system (max 19 chars)",
				},
				{
					DisplayName: "GSTIN",
					Name:        "gstin",
					Type:        "string",
					Default:     "",
					Description: "Customer's GSTIN",
					Placeholder: "27AAEPM1234C1Z5",
				},
				{
					DisplayName: "Merchant Customer Reference",
					Name:        "merchantCustomerReference",
					Type:        "string",
					Default:     "",
					Description: "Unique identifier of the customer for the request (max 50 chars)",
				},
				addressCollection("Billing Address", "billingAddress", "Billing"),
				addressCollection("Shipping Address", "shippingAddress", "Shipping"),
				{
					DisplayName: "Product Details",
					Name:        "productDetails",
					Type:        "fixedCollection",
					Default:     map[string]any{},
					Multiple:    true,
					Properties: []Property{
						{
							DisplayName: "Product",
							Name:        "product",
							Type:        "group",
							Default:     map[string]any{},
							Properties: []Property{
								{DisplayName: "Product Amount (Paisa)", Name: "productAmount", Type: "number", Default: 0, Description: "Product amount in Paisa"},
								{DisplayName: "Product Code", Name: "productCode", Type: "string", Default: "", Description: "Unique product identifier"},
								{DisplayName: "Product Coupon Currency", Name: "productCouponCurrency", Type: "string", Default: "", Description: "Currency type for the discount"},
								{DisplayName: "Product Coupon Discount (Paisa)", Name: "productCouponDiscount", Type: "number", Default: 0, Description: "Discount amount in Paisa"},
								{DisplayName: "Product Currency", Name: "productCurrency", Type: "string", Default: "", Description: "Currency type for the product"},
							},
						},
					},
				},
				{
					DisplayName: "Cart Coupon Discount (Paisa)",
					Name:        "cartCouponDiscount",
					Type:        "number",
					Default:     0,
					Description: "Cart-level discount amount in Paisa",
				},
				{
					DisplayName: "Cart Coupon Currency",
					Name:        "cartCouponCurrency",
					Type:        "string",
					Default:     types.DefaultCurrency,
					Description: "Currency type for the cart discount",
				},
				{
					DisplayName: "Merchant Metadata",
					Name:        "merchantMetadata",
					Type:        "fixedCollection",
					Default:     map[string]any{},
					Multiple:    true,
					Description: "Additional key-value pairs for storing custom information",
					Properties: []Property{
						{
							DisplayName: "Metadata",
							Name:        "metadata",
							Type:        "group",
							Default:     map[string]any{},
							Properties: []Property{
								{DisplayName: "Key", Name: "key", Type: "string", Default: "", Description: "Metadata key"},
								{DisplayName: "Value", Name: "value", Type: "string", Default: "", Description: "Metadata value"},
							},
						},
					},
				},
			},
		},
	}
}

func createOrderProperties() []Property {
	show := &DisplayWhen{Operation: []string{types.OperationCreateOrder}}
	return []Property{
		{
			DisplayName: "Order Amount (Paisa)",
			Name:        "orderAmount",
			Type:        "number",
			Default:     types.DefaultAmount,
			Required:    true,
			Description: "Order amount in Paisa (100 paisa = Rs 1). Min: 100 (Rs 1), Max: 100000000 (Rs 10 lakh).",
			MinValue:    100,
			MaxValue:    100000000,
			DisplayWhen: show,
		},
		{
			DisplayName: "Currency",
			Name:        "currency",
			Type:        "string",
			Default:     types.DefaultCurrency,
			Required:    true,
			Description: "Currency type for the transaction",
			DisplayWhen: show,
		},
		{
			DisplayName: "Merchant Order Reference",
			Name:        "merchantOrderReference",
			Type:        "string",
			Default:     "",
			Required:    true,
			Description: "Unique identifier for the order request (1-50 chars, only A-Z, a-z, 0-9, -, _)",
			Placeholder: "order_12345",
			DisplayWhen: show,
		},
		{
			DisplayName: "Additional Options",
			Name:        "additionalOptions",
			Type:        "collection",
			Default:     map[string]any{},
			Placeholder: "Add Option",
			DisplayWhen: show,
			Properties: []Property{
				{
					DisplayName: "Pre Auth",
					Name:        "preAuth",
					Type:        "boolean",
					Default:     false,
					Description: "Enable pre-authorization for the order",
				},
				allowedPaymentMethodsProperty(),
				{
					DisplayName: "Notes",
					Name:        "notes",
					Type:        "string",
					Default:     "",
					Description: "Note to associate with the order",
				},
				{
					DisplayName: "Callback URL",
					Name:        "callbackUrl",
					Type:        "string",
					Default:     "",
					Description: "Success callback URL for customer redirection",
				},
				{
					DisplayName: "Failure Callback URL",
					Name:        "failureCallbackUrl",
					Type:        "string",
					Default:     "",
					Description: "Failure callback URL for customer redirection",
				},
				{
					DisplayName: "Purchase Details",
					Name:        "purchaseDetails",
					Type:        "fixedCollection",
					Default:     map[string]any{},
					Properties: []Property{
						{
							DisplayName: "Details",
							Name:        "details",
							Type:        "group",
							Default:     map[string]any{},
							Properties: []Property{
								{DisplayName: "Customer Email", Name: "customerEmail", Type: "string", Default: "", Description: "Customer's email address (max 50 chars)"},
								{DisplayName: "Customer First Name", Name: "customerFirstName", Type: "string", Default: "", Description: "Customer's first name (max 50 chars)"},
								{DisplayName: "Customer Last Name", Name: "customerLastName", Type: "string", Default: "", Description: "Customer's last name (max 50 chars)"},
								{DisplayName: "Customer ID", Name: "customerId", Type: "string", Default: "", Description: "Unique identifier of the customer in your system (max 19 chars)"},
								{DisplayName: "Customer Mobile Number", Name: "customerMobileNumber", Type: "string", Default: "", Description: "Customer's mobile number (10-20 digits)"},
								{DisplayName: "Country Code", Name: "countryCode", Type: "string", Default: types.DefaultCountryCode, Description: "Country code of the mobile number", Placeholder: "91"},
								addressCollection("Billing Address", "billingAddress", "Billing"),
								addressCollection("Shipping Address", "shippingAddress", "Shipping"),
							},
						},
					},
				},
			},
		},
	}
}

func getOrderProperties() []Property {
	return []Property{
		{
			DisplayName: "Order ID",
			Name:        "orderId",
			Type:        "string",
			Default:     "",
			Required:    true,
			Description: "Unique identifier of the order in the Plural database (max 50 chars)",
			Placeholder: "v1-4405071524-aa-qlAtAf",
			DisplayWhen: &DisplayWhen{Operation: []string{types.OperationGetOrder}},
		},
	}
}

func getPaymentLinkProperties() []Property {
	return []Property{
		{
			DisplayName: "Payment Link ID",
			Name:        "paymentLinkId",
			Type:        "string",
			Default:     "",
			Required:    true,
			Description: "Unique identifier of the payment link in the Plural database (max 50 chars)",
			Placeholder: "pl-v1-250306082755-aa-uT0noy",
			DisplayWhen: &DisplayWhen{Operation: []string{types.OperationGetPaymentLink}},
		},
	}
}

func allowedPaymentMethodsProperty() Property {
	options := make([]Option, 0, len(types.PaymentMethods))
	for _, method := range types.PaymentMethods {
		options = append(options, Option{Name: method, Value: method})
	}
	return Property{
		DisplayName: "Allowed Payment Methods",
		Name:        "allowedPaymentMethods",
		Type:        "multiOptions",
		Default:     []string{},
		Description: "Payment methods to offer customers",
		Options:     options,
	}
}

func addressCollection(displayName, name, kind string) Property {
	return Property{
		DisplayName: displayName,
		Name:        name,
		Type:        "fixedCollection",
		Default:     map[string]any{},
		Properties: []Property{
			{
				DisplayName: "Address",
				Name:        "address",
				Type:        "group",
				Default:     map[string]any{},
				Properties: []Property{
					{DisplayName: "Address Line 1", Name: "address1", Type: "string", Default: "", Description: kind + " address line 1 (max 100 chars)"},
					{DisplayName: "Address Line 2", Name: "address2", Type: "string", Default: "", Description: kind + " address line 2 (max 100 chars)"},
					{DisplayName: "Address Line 3", Name: "address3", Type: "string", Default: "", Description: kind + " address line 3 (max 100 chars)"},
					{DisplayName: "Pincode", Name: "pincode", Type: "string", Default: "", Description: "Pincode (6-10 digits)", Placeholder: "400001"},
					{DisplayName: "City", Name: "city", Type: "string", Default: "", Description: "City (max 50 chars)"},
					{DisplayName: "State", Name: "state", Type: "string", Default: "", Description: "State (max 50 chars)"},
					{DisplayName: "Country", Name: "country", Type: "string", Default: "", Description: "Country (max 50 chars)"},
				},
			},
		},
	}
}
