package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Param is a single named value of a benchmark.
type Param struct {
	Name  string
	Value any
}

// Params keeps parameters in insertion order.
type Params []Param

// Add appends a parameter and returns the extended list.
func (p Params) Add(name string, value any) Params {
	return append(p, Param{Name: name, Value: value})
}

// Names returns the parameter names in order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for _, param := range p {
		names = append(names, param.Name)
	}
	return names
}

// ParseParams reads a YAML mapping of parameter names to values. Keys keep
// their document order and must be unique. Values are resolved by their YAML
// tag, so 0x10, 1e-3 and true arrive as int, float64 and bool.
func ParseParams(data []byte) (Params, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Kind == 0 {
		return nil, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parameters must be a mapping (line %d)", root.Line)
	}

	params := make(Params, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if first, dup := seen[key.Value]; dup {
			return nil, fmt.Errorf("duplicate parameter %s (line %d, first defined on line %d)", key.Value, key.Line, first)
		}
		seen[key.Value] = key.Line

		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parameter %s must be a scalar (line %d)", key.Value, value.Line)
		}

		var decoded any
		if err := value.Decode(&decoded); err != nil {
			return nil, fmt.Errorf("parameter %s (line %d): %w", key.Value, value.Line, err)
		}
		params = params.Add(key.Value, decoded)
	}

	return params, nil
}

// ParseAssignments builds Params from "name=value" strings, in order.
func ParseAssignments(values []string) (Params, error) {
	params := make(Params, 0, len(values))
	for _, raw := range values {
		name, value, ok := strings.Cut(raw, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected name=value", raw)
		}
		params = params.Add(name, strings.TrimSpace(value))
	}
	return params, nil
}

// ToFloat converts numeric kinds, json.Number and numeric strings to float64.
// Integers beyond 2^53 are rounded to the nearest representable float.
func ToFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		return v.Float64()
	case string:
		return parseFloat(v)
	case fmt.Stringer:
		return parseFloat(v.String())
	default:
		return 0, ErrNotNumeric
	}
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity", "+infinity", ".inf", "+.inf":
		s = "+Inf"
	case "-inf", "-infinity", "-.inf":
		s = "-Inf"
	case "nan", ".nan":
		s = "NaN"
	}
	return strconv.ParseFloat(s, 64)
}
