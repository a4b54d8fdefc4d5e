package pinelabs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TokenError means the client-credentials exchange failed; the data call was
// never attempted.
type TokenError struct {
	Reason string
}

func (e *TokenError) Error() string {
	return "failed to generate Pine Labs access token, check your Client ID and Secret: " + e.Reason
}

// RequestError is the single normalized form of a vendor rejection or
// transport failure, carrying the item index for correlation.
type RequestError struct {
	Code      string
	Message   string
	Source    string
	Step      string
	ItemIndex int
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("Pine Labs API error (%s): %s", e.Code, e.Message)
	if e.Source != "" || e.Step != "" {
		msg += fmt.Sprintf(" [Source: %s, Step: %s]", e.Source, e.Step)
	}
	return msg
}

// vendorError covers the error-body shapes the API is known to produce.
type vendorError struct {
	Code                   string `json:"code"`
	ErrorCode              string `json:"error_code"`
	Message                string `json:"message"`
	ErrorMessage           string `json:"error_message"`
	AdditionalErrorPayload *struct {
		Source string `json:"source"`
		Step   string `json:"step"`
	} `json:"additionalErrorPayload"`
}

// newRequestError extracts a code and message from whichever error shape the
// vendor populated: structured {code,message} body, generic message field,
// raw string body, then the HTTP status as a last resort.
func newRequestError(status int, body []byte, itemIndex int) *RequestError {
	reqErr := &RequestError{
		Code:      strconv.Itoa(status),
		Message:   "Unknown API error",
		ItemIndex: itemIndex,
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return reqErr
	}

	var parsed vendorError
	if err := json.Unmarshal(trimmed, &parsed); err == nil {
		if parsed.Code != "" {
			reqErr.Code = parsed.Code
		} else if parsed.ErrorCode != "" {
			reqErr.Code = parsed.ErrorCode
		}
		if parsed.Message != "" {
			reqErr.Message = parsed.Message
		} else if parsed.ErrorMessage != "" {
			reqErr.Message = parsed.ErrorMessage
		} else {
			reqErr.Message = rawBodyMessage(trimmed)
		}
		if parsed.AdditionalErrorPayload != nil {
			reqErr.Source = parsed.AdditionalErrorPayload.Source
			reqErr.Step = parsed.AdditionalErrorPayload.Step
		}
		return reqErr
	}

	reqErr.Message = rawBodyMessage(trimmed)
	return reqErr
}

// rawBodyMessage renders a non-structured error body as the message, bounded
// so a misbehaving upstream cannot flood the host error surface.
func rawBodyMessage(body []byte) string {
	var asString string
	if err := json.Unmarshal(body, &asString); err == nil && asString != "" {
		return asString
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 500 {
		msg = msg[:500]
	}
	if msg == "" {
		return "Unknown API error"
	}
	return msg
}
