package types

import "encoding/json"

// Parameters holds one input item's flat parameter set, decoded from JSON.
// It stands in for the host runtime's parameter store: values are looked up
// by name with a typed default, mirroring how the host hands parameters to a
// node per item.
type Parameters map[string]any

func (p Parameters) Has(name string) bool {
	_, ok := p[name]
	return ok
}

func (p Parameters) String(name, defaultValue string) string {
	if v, ok := p[name].(string); ok && v != "" {
		return v
	}
	return defaultValue
}

// Int accepts the numeric shapes JSON decoding can produce.
func (p Parameters) Int(name string, defaultValue int64) int64 {
	switch v := p[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	}
	return defaultValue
}

func (p Parameters) Bool(name string, defaultValue bool) bool {
	if v, ok := p[name].(bool); ok {
		return v
	}
	return defaultValue
}

// Map returns a nested parameter collection, or nil when absent.
func (p Parameters) Map(name string) Parameters {
	switch v := p[name].(type) {
	case Parameters:
		return v
	case map[string]any:
		return Parameters(v)
	}
	return nil
}

// Slice returns a repeated nested collection, skipping entries that are not
// objects.
func (p Parameters) Slice(name string) []Parameters {
	raw, ok := p[name].([]any)
	if !ok {
		return nil
	}
	items := make([]Parameters, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case Parameters:
			items = append(items, v)
		case map[string]any:
			items = append(items, Parameters(v))
		}
	}
	return items
}

// StringSlice returns a list of strings, tolerating both []string and the
// []any produced by JSON decoding.
func (p Parameters) StringSlice(name string) []string {
	switch v := p[name].(type) {
	case []string:
		return v
	case []any:
		items := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				items = append(items, s)
			}
		}
		return items
	}
	return nil
}
