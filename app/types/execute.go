package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

// ExecuteRequest is one node invocation: a (resource, operation) pair applied
// sequentially to every input item.
type ExecuteRequest struct {
	Resource       string       `json:"resource"`
	Operation      string       `json:"operation"`
	ContinueOnFail bool         `json:"continue_on_fail"`
	Items          []Parameters `json:"items"`
}

type ExecuteResponse struct {
	Results []map[string]any `json:"results"`
}

func NewExecuteRequestFromContext(ctx echo.Context) (*ExecuteRequest, error) {
	var body ExecuteRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Resource = strings.TrimSpace(body.Resource)
	body.Operation = strings.TrimSpace(body.Operation)

	return &body, nil
}

func (r *ExecuteRequest) Validate() error {
	if r.Resource != ResourcePaymentLink && r.Resource != ResourceOrder {
		return errors.New("resource must be paymentLink or order")
	}
	if r.Operation == "" {
		return errors.New("operation is required")
	}
	if len(r.Items) == 0 {
		return errors.New("items must not be empty")
	}
	return nil
}
