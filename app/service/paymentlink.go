package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/vibast-solutions/node-go-pinelabs/app/mapper"
	"github.com/vibast-solutions/node-go-pinelabs/app/pinelabs"
	"github.com/vibast-solutions/node-go-pinelabs/app/types"
	"github.com/vibast-solutions/node-go-pinelabs/app/validate"
)

// PaymentLinkParams carries the decoded inputs for one payment-link creation.
type PaymentLinkParams struct {
	Amount                       int64
	Currency                     string
	MerchantPaymentLinkReference string
	CustomerEmail                string
	CustomerFirstName            string
	CustomerLastName             string
	CustomerMobileNumber         string
	Options                      PaymentLinkOptions
}

type PaymentLinkOptions struct {
	Description               string
	ExpireBy                  string
	AllowedPaymentMethods     []string
	CountryCode               string
	CustomerID                string
	GSTIN                     string
	MerchantCustomerReference string
	BillingAddress            *types.Address
	ShippingAddress           *types.Address
	Products                  []ProductParams
	CartCouponDiscount        int64
	CartCouponCurrency        string
	Metadata                  []types.MetadataItem
}

type ProductParams struct {
	Code           string
	Amount         int64
	Currency       string
	CouponDiscount int64
	CouponCurrency string
}

func decodePaymentLinkParams(params types.Parameters) PaymentLinkParams {
	in := PaymentLinkParams{
		Amount:                       params.Int("amount", 0),
		Currency:                     params.String("currency", types.DefaultCurrency),
		MerchantPaymentLinkReference: params.String("merchantPaymentLinkReference", ""),
		CustomerEmail:                params.String("customerEmail", ""),
		CustomerFirstName:            params.String("customerFirstName", ""),
		CustomerLastName:             params.String("customerLastName", ""),
		CustomerMobileNumber:         params.String("customerMobileNumber", ""),
	}

	options := params.Map("additionalOptions")
	if options == nil {
		return in
	}

	in.Options = PaymentLinkOptions{
		Description:               options.String("description", ""),
		ExpireBy:                  options.String("expireBy", ""),
		AllowedPaymentMethods:     options.StringSlice("allowedPaymentMethods"),
		CountryCode:               options.String("countryCode", ""),
		CustomerID:                options.String("customerId", ""),
		GSTIN:                     options.String("gstin", ""),
		MerchantCustomerReference: options.String("merchantCustomerReference", ""),
		BillingAddress:            decodeAddress(options.Map("billingAddress")),
		ShippingAddress:           decodeAddress(options.Map("shippingAddress")),
		CartCouponDiscount:        options.Int("cartCouponDiscount", 0),
		CartCouponCurrency:        options.String("cartCouponCurrency", ""),
		Metadata:                  decodeMetadata(options.Map("merchantMetadata")),
	}

	if products := options.Map("productDetails"); products != nil {
		for _, entry := range products.Slice("product") {
			in.Options.Products = append(in.Options.Products, ProductParams{
				Code:           entry.String("productCode", ""),
				Amount:         entry.Int("productAmount", 0),
				Currency:       entry.String("productCurrency", ""),
				CouponDiscount: entry.Int("productCouponDiscount", 0),
				CouponCurrency: entry.String("productCouponCurrency", ""),
			})
		}
	}

	return in
}

// BuildPaymentLinkRequest validates the inputs and shapes the vendor payload.
// Purely a transform: no network call happens here, and validation failures
// surface before any request object is assembled.
func BuildPaymentLinkRequest(in PaymentLinkParams) (*types.CreatePaymentLinkRequest, error) {
	if err := validate.Amount(in.Amount); err != nil {
		return nil, err
	}
	if err := validate.MerchantReference(in.MerchantPaymentLinkReference); err != nil {
		return nil, err
	}
	if in.Options.ExpireBy != "" {
		if err := validate.ExpireBy(in.Options.ExpireBy); err != nil {
			return nil, err
		}
	}

	customer := types.Customer{
		EmailID:      in.CustomerEmail,
		FirstName:    in.CustomerFirstName,
		LastName:     in.CustomerLastName,
		MobileNumber: in.CustomerMobileNumber,

		CountryCode:               in.Options.CountryCode,
		CustomerID:                in.Options.CustomerID,
		GSTIN:                     in.Options.GSTIN,
		MerchantCustomerReference: in.Options.MerchantCustomerReference,
	}
	if addr := in.Options.BillingAddress; addr != nil && !addr.Empty() {
		customer.BillingAddress = addr
	}
	if addr := in.Options.ShippingAddress; addr != nil && !addr.Empty() {
		customer.ShippingAddress = addr
	}

	req := &types.CreatePaymentLinkRequest{
		Amount:                       types.Amount{Value: in.Amount, Currency: in.Currency},
		MerchantPaymentLinkReference: in.MerchantPaymentLinkReference,
		Customer:                     customer,
		Description:                  in.Options.Description,
		ExpireBy:                     in.Options.ExpireBy,
	}

	if len(in.Options.AllowedPaymentMethods) > 0 {
		req.AllowedPaymentMethods = strings.Join(in.Options.AllowedPaymentMethods, ",")
	}

	for _, product := range in.Options.Products {
		detail := types.ProductDetail{ProductCode: product.Code}
		if product.Amount != 0 {
			detail.ProductAmount = &types.Amount{
				Value:    product.Amount,
				Currency: currencyOrDefault(product.Currency),
			}
		}
		if product.CouponDiscount != 0 {
			detail.ProductCouponDiscountAmount = &types.Amount{
				Value:    product.CouponDiscount,
				Currency: currencyOrDefault(product.CouponCurrency),
			}
		}
		req.ProductDetails = append(req.ProductDetails, detail)
	}

	if in.Options.CartCouponDiscount > 0 {
		req.CartCouponDiscountAmount = &types.Amount{
			Value:    in.Options.CartCouponDiscount,
			Currency: currencyOrDefault(in.Options.CartCouponCurrency),
		}
	}

	if len(in.Options.Metadata) > 0 {
		metadata := make(map[string]string, len(in.Options.Metadata))
		for _, item := range in.Options.Metadata {
			if item.Key != "" && item.Value != "" {
				// Duplicate keys: last write wins.
				metadata[item.Key] = item.Value
			}
		}
		if len(metadata) > 0 {
			req.MerchantMetadata = metadata
		}
	}

	return req, nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return types.DefaultCurrency
	}
	return currency
}

func (s *NodeService) createPaymentLink(ctx context.Context, params types.Parameters, itemIndex int) (map[string]any, error) {
	body, err := BuildPaymentLinkRequest(decodePaymentLinkParams(params))
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Request(ctx, http.MethodPost, pinelabs.EndpointPaymentLink, body, itemIndex)
	if err != nil {
		return nil, err
	}
	return mapper.Enrich(resp, pinelabs.EndpointPaymentLink, pinelabs.DocCreatePaymentLink, "amount"), nil
}

func (s *NodeService) getPaymentLink(ctx context.Context, params types.Parameters, itemIndex int) (map[string]any, error) {
	paymentLinkID := params.String("paymentLinkId", "")
	if err := validate.PaymentLinkID(paymentLinkID); err != nil {
		return nil, err
	}

	path := pinelabs.EndpointPaymentLink + "/" + paymentLinkID
	resp, err := s.client.Request(ctx, http.MethodGet, path, nil, itemIndex)
	if err != nil {
		return nil, err
	}
	return mapper.Enrich(resp, path, pinelabs.DocGetPaymentLink, "amount"), nil
}
