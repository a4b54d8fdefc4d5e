// Package service dispatches workflow input items to the Pine Labs
// operations: each item is validated, shaped into a vendor request, sent, and
// its response enriched for workflow output.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/node-go-pinelabs/app/factory"
	"github.com/vibast-solutions/node-go-pinelabs/app/types"
)

type apiClient interface {
	Request(ctx context.Context, method, path string, body any, itemIndex int) (map[string]any, error)
}

type NodeService struct {
	client apiClient
	logger logrus.FieldLogger
}

func NewNodeService(client apiClient) *NodeService {
	return &NodeService{
		client: client,
		logger: factory.NewModuleLogger("pinelabs-node"),
	}
}

// Result is one output entry, paired to the input item that produced it.
type Result struct {
	JSON      map[string]any
	ItemIndex int
}

type ExecuteInput struct {
	Operation      string
	ContinueOnFail bool
	Items          []types.Parameters
}

type operationFunc func(ctx context.Context, params types.Parameters, itemIndex int) (map[string]any, error)

// Execute runs the configured operation over every input item, sequentially
// and in order. The operation is resolved once per invocation; an
// unrecognized value fails the whole run regardless of the continue-on-fail
// policy. With ContinueOnFail set, a failing item contributes an error entry
// and processing moves on; otherwise the first failure aborts the run.
func (s *NodeService) Execute(ctx context.Context, input ExecuteInput) ([]Result, error) {
	operation, err := s.resolveOperation(input.Operation)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(input.Items))
	for itemIndex, params := range input.Items {
		payload, err := operation(ctx, params, itemIndex)
		if err != nil {
			if input.ContinueOnFail {
				s.logger.WithError(err).WithField("item_index", itemIndex).Warn("Item failed, continuing")
				results = append(results, Result{
					JSON:      map[string]any{"error": err.Error(), "itemIndex": itemIndex},
					ItemIndex: itemIndex,
				})
				continue
			}
			return nil, wrapItemError(err, itemIndex)
		}
		results = append(results, Result{JSON: payload, ItemIndex: itemIndex})
	}

	return results, nil
}

func (s *NodeService) resolveOperation(operation string) (operationFunc, error) {
	switch operation {
	case types.OperationCreatePaymentLink:
		return s.createPaymentLink, nil
	case types.OperationGetPaymentLink:
		return s.getPaymentLink, nil
	case types.OperationCreateOrder:
		return s.createOrder, nil
	case types.OperationGetOrder:
		return s.getOrder, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrOperationNotSupported, operation)
	}
}
