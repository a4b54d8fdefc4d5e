// Package mapper shapes API responses for workflow output: a display-ready
// amount string and an info block pointing at the endpoint and its docs.
package mapper

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Enrich copies the vendor response and adds _amount_formatted (when the
// response carries an amount under amountKey) and _api_info. Additive only:
// a key the vendor returned is never overwritten.
func Enrich(resp map[string]any, endpoint, documentationURL, amountKey string) map[string]any {
	out := make(map[string]any, len(resp)+2)
	for k, v := range resp {
		out[k] = v
	}

	if paisa, ok := amountValue(resp, amountKey); ok {
		setIfAbsent(out, "_amount_formatted", FormatAmountINR(paisa))
	}
	setIfAbsent(out, "_api_info", map[string]any{
		"endpoint":      endpoint,
		"documentation": documentationURL,
		"timestamp":     Timestamp(),
	})
	return out
}

// amountValue digs resp[amountKey].value out of a decoded JSON response.
func amountValue(resp map[string]any, amountKey string) (int64, bool) {
	amount, ok := resp[amountKey].(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := amount["value"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
	}
	return 0, false
}

func setIfAbsent(out map[string]any, key string, value any) {
	if _, exists := out[key]; !exists {
		out[key] = value
	}
}

// FormatAmountINR renders a paisa value as rupees with Indian digit grouping,
// e.g. 100000000 -> "Rs 10,00,000.00".
func FormatAmountINR(paisa int64) string {
	sign := ""
	if paisa < 0 {
		sign = "-"
		paisa = -paisa
	}
	rupees := paisa / 100
	fraction := paisa % 100
	return fmt.Sprintf("Rs %s%s.%02d", sign, groupIndian(rupees), fraction)
}

// groupIndian applies the 3-then-2 digit grouping used for rupee amounts.
func groupIndian(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// Timestamp returns the current instant in the RFC 3339 form used for
// response info blocks and request headers.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
