package controller

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/node-go-pinelabs/app/factory"
	"github.com/vibast-solutions/node-go-pinelabs/app/pinelabs"
	"github.com/vibast-solutions/node-go-pinelabs/app/schema"
	"github.com/vibast-solutions/node-go-pinelabs/app/service"
	"github.com/vibast-solutions/node-go-pinelabs/app/types"
)

type NodeController struct {
	nodeService *service.NodeService
	contract    *executeContract
	logger      logrus.FieldLogger
}

func NewNodeController(nodeService *service.NodeService) (*NodeController, error) {
	contract, err := newExecuteContract()
	if err != nil {
		return nil, err
	}
	return &NodeController{
		nodeService: nodeService,
		contract:    contract,
		logger:      factory.NewModuleLogger("pinelabs-controller"),
	}, nil
}

func (c *NodeController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *NodeController) Schema(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, schema.Describe())
}

func (c *NodeController) Execute(ctx echo.Context) error {
	rawBody, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	valid, contractErrors, err := c.contract.Validate(rawBody)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if !valid {
		return c.writeError(ctx, http.StatusBadRequest, formatContractErrors(contractErrors))
	}

	// Bind reads the body again after the contract check consumed it.
	ctx.Request().Body = io.NopCloser(bytes.NewReader(rawBody))
	req, err := types.NewExecuteRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	results, err := c.nodeService.Execute(ctx.Request().Context(), service.ExecuteInput{
		Operation:      req.Operation,
		ContinueOnFail: req.ContinueOnFail,
		Items:          req.Items,
	})
	if err != nil {
		var tokenErr *pinelabs.TokenError
		switch {
		case errors.Is(err, service.ErrOperationNotSupported):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.As(err, &tokenErr):
			return c.writeError(ctx, http.StatusUnauthorized, err.Error())
		case isItemFailure(err):
			return c.writeError(ctx, http.StatusUnprocessableEntity, err.Error())
		default:
			c.logger.WithError(err).Error("Execute failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	payload := make([]map[string]any, 0, len(results))
	for _, result := range results {
		payload = append(payload, result.JSON)
	}
	return ctx.JSON(http.StatusOK, &types.ExecuteResponse{Results: payload})
}

// isItemFailure reports whether the run aborted on a specific input item,
// either before the call (validation) or at the vendor boundary.
func isItemFailure(err error) bool {
	var itemErr *service.ItemError
	if errors.As(err, &itemErr) {
		return true
	}
	var reqErr *pinelabs.RequestError
	return errors.As(err, &reqErr)
}

func (c *NodeController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
