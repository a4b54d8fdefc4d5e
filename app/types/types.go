package types

// Credentials identify a Pine Labs merchant account. They come from the host
// credential store (or the environment for the standalone runner) and are
// never persisted here.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Environment  string
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// Amount is a monetary value in paisa (1/100 rupee).
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// Address fields are all optional; absent fields are omitted from the wire
// payload, never sent as empty strings.
type Address struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	Address3 string `json:"address3,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Empty reports whether no sub-field was populated. An empty address is never
// attached to a request.
func (a Address) Empty() bool {
	return a == Address{}
}

type Customer struct {
	EmailID                   string   `json:"email_id,omitempty"`
	FirstName                 string   `json:"first_name,omitempty"`
	LastName                  string   `json:"last_name,omitempty"`
	CustomerID                string   `json:"customer_id,omitempty"`
	MobileNumber              string   `json:"mobile_number,omitempty"`
	CountryCode               string   `json:"country_code,omitempty"`
	BillingAddress            *Address `json:"billing_address,omitempty"`
	ShippingAddress           *Address `json:"shipping_address,omitempty"`
	MerchantCustomerReference string   `json:"merchant_customer_reference,omitempty"`
	GSTIN                     string   `json:"gstin,omitempty"`
}

func (c Customer) Empty() bool {
	return c == Customer{}
}

type ProductDetail struct {
	ProductCode                 string  `json:"product_code,omitempty"`
	ProductAmount               *Amount `json:"product_amount,omitempty"`
	ProductCouponDiscountAmount *Amount `json:"product_coupon_discount_amount,omitempty"`
}

type PurchaseDetails struct {
	Customer        *Customer `json:"customer,omitempty"`
	BillingAddress  *Address  `json:"billing_address,omitempty"`
	ShippingAddress *Address  `json:"shipping_address,omitempty"`
}

// CreatePaymentLinkRequest is the vendor payload for POST /pay/v1/paymentlink.
// Note the asymmetry with orders: allowed payment methods travel as a
// comma-joined string here.
type CreatePaymentLinkRequest struct {
	Amount                       Amount            `json:"amount"`
	Description                  string            `json:"description,omitempty"`
	ExpireBy                     string            `json:"expire_by,omitempty"`
	AllowedPaymentMethods        string            `json:"allowed_payment_methods,omitempty"`
	MerchantPaymentLinkReference string            `json:"merchant_payment_link_reference"`
	Customer                     Customer          `json:"customer"`
	ProductDetails               []ProductDetail   `json:"product_details,omitempty"`
	CartCouponDiscountAmount     *Amount           `json:"cart_coupon_discount_amount,omitempty"`
	MerchantMetadata             map[string]string `json:"merchant_metadata,omitempty"`
}

// CreateOrderRequest is the vendor payload for POST /checkout/v1/orders.
type CreateOrderRequest struct {
	MerchantOrderReference string           `json:"merchant_order_reference"`
	OrderAmount            Amount           `json:"order_amount"`
	PreAuth                *bool            `json:"pre_auth,omitempty"`
	AllowedPaymentMethods  []string         `json:"allowed_payment_methods,omitempty"`
	Notes                  string           `json:"notes,omitempty"`
	CallbackURL            string           `json:"callback_url,omitempty"`
	FailureCallbackURL     string           `json:"failure_callback_url,omitempty"`
	PurchaseDetails        *PurchaseDetails `json:"purchase_details,omitempty"`
}

type MetadataItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
