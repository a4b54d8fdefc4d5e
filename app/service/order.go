package service

import (
	"context"
	"net/http"

	"github.com/vibast-solutions/node-go-pinelabs/app/mapper"
	"github.com/vibast-solutions/node-go-pinelabs/app/pinelabs"
	"github.com/vibast-solutions/node-go-pinelabs/app/types"
	"github.com/vibast-solutions/node-go-pinelabs/app/validate"
)

// OrderParams carries the decoded inputs for one order creation.
type OrderParams struct {
	OrderAmount            int64
	Currency               string
	MerchantOrderReference string
	Options                OrderOptions
}

type OrderOptions struct {
	// PreAuth stays nil unless the parameter was explicitly supplied.
	PreAuth *bool

	// Sent as an array here, unlike the payment-link builder's joined string.
	AllowedPaymentMethods []string
	Notes                 string
	CallbackURL           string
	FailureCallbackURL    string
	PurchaseDetails       *PurchaseDetailsParams
}

type PurchaseDetailsParams struct {
	CustomerEmail        string
	CustomerFirstName    string
	CustomerLastName     string
	CustomerID           string
	CustomerMobileNumber string
	CountryCode          string
	BillingAddress       *types.Address
	ShippingAddress      *types.Address
}

func decodeOrderParams(params types.Parameters) OrderParams {
	in := OrderParams{
		OrderAmount:            params.Int("orderAmount", 0),
		Currency:               params.String("currency", types.DefaultCurrency),
		MerchantOrderReference: params.String("merchantOrderReference", ""),
	}

	options := params.Map("additionalOptions")
	if options == nil {
		return in
	}

	in.Options = OrderOptions{
		AllowedPaymentMethods: options.StringSlice("allowedPaymentMethods"),
		Notes:                 options.String("notes", ""),
		CallbackURL:           options.String("callbackUrl", ""),
		FailureCallbackURL:    options.String("failureCallbackUrl", ""),
	}

	if options.Has("preAuth") {
		preAuth := options.Bool("preAuth", false)
		in.Options.PreAuth = &preAuth
	}

	if purchase := options.Map("purchaseDetails"); purchase != nil {
		if details := purchase.Map("details"); details != nil {
			in.Options.PurchaseDetails = &PurchaseDetailsParams{
				CustomerEmail:        details.String("customerEmail", ""),
				CustomerFirstName:    details.String("customerFirstName", ""),
				CustomerLastName:     details.String("customerLastName", ""),
				CustomerID:           details.String("customerId", ""),
				CustomerMobileNumber: details.String("customerMobileNumber", ""),
				CountryCode:          details.String("countryCode", ""),
				BillingAddress:       decodeAddress(details.Map("billingAddress")),
				ShippingAddress:      decodeAddress(details.Map("shippingAddress")),
			}
		}
	}

	return in
}

// BuildOrderRequest validates the inputs and shapes the vendor payload, with
// the same fail-fast ordering as the payment-link builder.
func BuildOrderRequest(in OrderParams) (*types.CreateOrderRequest, error) {
	if err := validate.Amount(in.OrderAmount); err != nil {
		return nil, err
	}
	if err := validate.MerchantReference(in.MerchantOrderReference); err != nil {
		return nil, err
	}

	req := &types.CreateOrderRequest{
		MerchantOrderReference: in.MerchantOrderReference,
		OrderAmount:            types.Amount{Value: in.OrderAmount, Currency: in.Currency},
		Notes:                  in.Options.Notes,
		CallbackURL:            in.Options.CallbackURL,
		FailureCallbackURL:     in.Options.FailureCallbackURL,
	}

	req.PreAuth = in.Options.PreAuth
	if len(in.Options.AllowedPaymentMethods) > 0 {
		req.AllowedPaymentMethods = in.Options.AllowedPaymentMethods
	}

	if details := in.Options.PurchaseDetails; details != nil {
		purchase := &types.PurchaseDetails{}

		customer := types.Customer{
			EmailID:      details.CustomerEmail,
			FirstName:    details.CustomerFirstName,
			LastName:     details.CustomerLastName,
			CustomerID:   details.CustomerID,
			MobileNumber: details.CustomerMobileNumber,
			CountryCode:  details.CountryCode,
		}
		if !customer.Empty() {
			purchase.Customer = &customer
		}
		if addr := details.BillingAddress; addr != nil && !addr.Empty() {
			purchase.BillingAddress = addr
		}
		if addr := details.ShippingAddress; addr != nil && !addr.Empty() {
			purchase.ShippingAddress = addr
		}

		if purchase.Customer != nil || purchase.BillingAddress != nil || purchase.ShippingAddress != nil {
			req.PurchaseDetails = purchase
		}
	}

	return req, nil
}

func (s *NodeService) createOrder(ctx context.Context, params types.Parameters, itemIndex int) (map[string]any, error) {
	body, err := BuildOrderRequest(decodeOrderParams(params))
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Request(ctx, http.MethodPost, pinelabs.EndpointOrders, body, itemIndex)
	if err != nil {
		return nil, err
	}
	return mapper.Enrich(resp, pinelabs.EndpointOrders, pinelabs.DocCreateOrder, "order_amount"), nil
}

func (s *NodeService) getOrder(ctx context.Context, params types.Parameters, itemIndex int) (map[string]any, error) {
	orderID := params.String("orderId", "")
	if err := validate.OrderID(orderID); err != nil {
		return nil, err
	}

	path := pinelabs.EndpointGetOrder + "/" + orderID
	resp, err := s.client.Request(ctx, http.MethodGet, path, nil, itemIndex)
	if err != nil {
		return nil, err
	}
	return mapper.Enrich(resp, path, pinelabs.DocGetOrder, "order_amount"), nil
}
