// Package pinelabs is a thin client for the Pine Labs Online (Plural) REST
// API. Each data call is preceded by a fresh client-credentials token
// exchange; tokens are never cached or reused across calls.
package pinelabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/node-go-pinelabs/app/factory"
	"github.com/vibast-solutions/node-go-pinelabs/app/types"
)

const (
	baseURLUAT        = "https://pluraluat.v2.pinepg.in/api"
	baseURLProduction = "https://api.pluralpay.in/api"

	EndpointToken       = "/auth/v1/token"
	EndpointPaymentLink = "/pay/v1/paymentlink"
	EndpointOrders      = "/checkout/v1/orders"
	EndpointGetOrder    = "/pay/v1/orders"
)

const (
	DocCreatePaymentLink = "https://developer.pinelabsonline.com/reference/payment-link-create"
	DocGetPaymentLink    = "https://developer.pinelabsonline.com/reference/payment-link-get-by-payment-link-id"
	DocCreateOrder       = "https://developer.pinelabsonline.com/reference/orders-create"
	DocGetOrder          = "https://developer.pinelabsonline.com/reference/orders-get-by-order-id"
)

const EnvironmentProduction = "production"

type Client struct {
	creds      types.Credentials
	httpClient *http.Client
	baseURL    string // overridable for testing
	logger     logrus.FieldLogger
}

func NewClient(creds types.Credentials, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		creds:      creds,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    BaseURLFor(creds.Environment),
		logger:     factory.NewModuleLogger("pinelabs-client"),
	}
}

// SetBaseURL points the client at an alternate API host, for tests that run
// against a stubbed vendor.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// BaseURLFor maps the credential environment to an API base. Anything other
// than production selects UAT.
func BaseURLFor(environment string) string {
	if environment == EnvironmentProduction {
		return baseURLProduction
	}
	return baseURLUAT
}

// Request obtains a bearer token and performs one authenticated API call.
// On success it returns the parsed response body unmodified; on failure it
// returns a *TokenError or *RequestError, never a raw transport error.
func (c *Client) Request(ctx context.Context, method, path string, body any, itemIndex int) (map[string]any, error) {
	token, err := c.generateToken(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil && methodHasBody(method) {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &RequestError{Message: "failed to encode request body: " + err.Error(), ItemIndex: itemIndex}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), ItemIndex: itemIndex}
	}
	c.setCommonHeaders(req)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), ItemIndex: itemIndex}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Message: "failed to read response body: " + err.Error(), ItemIndex: itemIndex}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Pine Labs API call failed")
		return nil, newRequestError(resp.StatusCode, respBody, itemIndex)
	}

	result := map[string]any{}
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, &result); err != nil {
			return nil, &RequestError{Message: "invalid JSON in API response: " + err.Error(), ItemIndex: itemIndex}
		}
	}
	return result, nil
}

// generateToken exchanges the client id/secret pair for a bearer token.
// Runs unconditionally before every data call.
func (c *Client) generateToken(ctx context.Context) (string, error) {
	payload := map[string]string{
		"client_id":     c.creds.ClientID,
		"client_secret": c.creds.ClientSecret,
		"grant_type":    "client_credentials",
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", &TokenError{Reason: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+EndpointToken, bytes.NewReader(data))
	if err != nil {
		return "", &TokenError{Reason: err.Error()}
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TokenError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TokenError{Reason: "failed to read token response: " + err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TokenError{Reason: fmt.Sprintf("token endpoint returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))}
	}

	var token types.TokenResponse
	if err := json.Unmarshal(respBody, &token); err != nil {
		return "", &TokenError{Reason: "invalid token response: " + err.Error()}
	}
	if token.AccessToken == "" {
		return "", &TokenError{Reason: "no access_token in token response"}
	}
	return token.AccessToken, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Request-Timestamp", time.Now().UTC().Format(time.RFC3339))
	req.Header.Set("Request-ID", uuid.NewString())
}

func methodHasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}
