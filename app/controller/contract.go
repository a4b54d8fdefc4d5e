package controller

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// executeSchema is the wire contract for POST /executions. Item parameters
// are left open: each operation reads the keys it needs and validates them
// itself.
const executeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["resource", "operation", "items"],
  "properties": {
    "resource": {
      "type": "string",
      "enum": ["paymentLink", "order"]
    },
    "operation": {
      "type": "string",
      "enum": ["createPaymentLink", "getPaymentLink", "createOrder", "getOrder"]
    },
    "continue_on_fail": {
      "type": "boolean"
    },
    "items": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object"
      }
    }
  },
  "additionalProperties": false
}`

// executeContract validates raw execute-request bodies against the JSON
// schema before any binding happens.
type executeContract struct {
	schemaLoader gojsonschema.JSONLoader
}

func newExecuteContract() (*executeContract, error) {
	schemaLoader := gojsonschema.NewStringLoader(executeSchema)
	if _, err := gojsonschema.NewSchema(schemaLoader); err != nil {
		return nil, fmt.Errorf("error compiling execute schema: %w", err)
	}
	return &executeContract{schemaLoader: schemaLoader}, nil
}

func (c *executeContract) Validate(requestBody []byte) (bool, []string, error) {
	documentLoader := gojsonschema.NewBytesLoader(requestBody)
	result, err := gojsonschema.Validate(c.schemaLoader, documentLoader)
	if err != nil {
		return false, nil, fmt.Errorf("error during validation: %w", err)
	}

	if result.Valid() {
		return true, nil, nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return false, errs, nil
}

func formatContractErrors(validationErrors []string) string {
	if len(validationErrors) == 0 {
		return ""
	}
	return "Validation errors: " + strings.Join(validationErrors, "; ")
}
