package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/unclebandit/formatkit/internal/format"
)

// CustomerID accepts either a string or a number on input and is kept as
// text. Numbers are canonicalised, so 1 and 1.0 name the same customer.
type CustomerID string

func (id *CustomerID) UnmarshalJSON(data []byte) error {
	s, _, err := decodeScalar(data)
	if err != nil {
		return fmt.Errorf("customer id: %w", err)
	}
	*id = CustomerID(s)
	return nil
}

func (id *CustomerID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("customer id: expected scalar, got %v", node.Tag)
	}
	if s, ok := yamlNumber(node); ok {
		*id = CustomerID(s)
		return nil
	}
	*id = CustomerID(node.Value)
	return nil
}

// Age is either a number or free text, exactly as the source supplied it.
// A numeric Age always holds a finite number in canonical form.
type Age struct {
	Text    string
	Numeric bool
}

// NumericAge builds a numeric Age. NaN and infinities have no numeric
// encoding and become text.
func NumericAge(n float64) Age {
	s := format.ToString(n)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Age{Text: s}
	}
	return Age{Text: s, Numeric: true}
}

// TextAge builds a textual Age.
func TextAge(s string) Age {
	return Age{Text: s}
}

func (a Age) String() string { return a.Text }

func (a Age) MarshalJSON() ([]byte, error) {
	if s, ok := canonicalNumber(a.Text); ok && a.Numeric {
		return []byte(s), nil
	}
	return json.Marshal(a.Text)
}

func (a *Age) UnmarshalJSON(data []byte) error {
	s, numeric, err := decodeScalar(data)
	if err != nil {
		return fmt.Errorf("age: %w", err)
	}
	*a = Age{Text: s, Numeric: numeric}
	return nil
}

func (a Age) MarshalYAML() (any, error) {
	if s, ok := canonicalNumber(a.Text); ok && a.Numeric {
		tag := "!!float"
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}, nil
	}
	return a.Text, nil
}

func (a *Age) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("age: expected scalar, got %v", node.Tag)
	}
	if s, ok := yamlNumber(node); ok {
		*a = Age{Text: s, Numeric: true}
		return nil
	}
	*a = Age{Text: node.Value}
	return nil
}

// Scan reads an age stored by Value: the JSON encoding of the age, so text
// and numbers keep their kind. Anything that is not a JSON string or number
// is taken as plain text.
func (a *Age) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*a = Age{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		*a = NumericAge(float64(v))
		return nil
	case float64:
		*a = NumericAge(v)
		return nil
	default:
		return fmt.Errorf("age: unsupported scan type %T", src)
	}

	text, numeric, err := decodeScalar([]byte(s))
	if err != nil {
		*a = Age{Text: s}
		return nil
	}
	*a = Age{Text: text, Numeric: numeric}
	return nil
}

func (a Age) Value() (driver.Value, error) {
	b, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// canonicalNumber parses s as a finite float64 and renders it the way
// format.ToString does.
func canonicalNumber(s string) (string, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	return format.ToString(f), true
}

// yamlNumber canonicalises !!int and !!float scalars. Integers may use the
// 0x/0o/0b prefixes YAML allows; .inf and .nan are not numbers here.
func yamlNumber(node *yaml.Node) (string, bool) {
	switch node.ShortTag() {
	case "!!int":
		if n, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return format.ToString(float64(n)), true
		}
		if n, err := strconv.ParseUint(node.Value, 0, 64); err == nil {
			return format.ToString(float64(n)), true
		}
		return canonicalNumber(node.Value)
	case "!!float":
		return canonicalNumber(node.Value)
	}
	return "", false
}

// decodeScalar reads a single JSON string or number and reports whether it
// was a number. Numbers come back canonicalised; null decodes to the empty
// string.
func decodeScalar(data []byte) (string, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", false, fmt.Errorf("unexpected data after value")
	}
	switch t := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return t, false, nil
	case json.Number:
		s, ok := canonicalNumber(t.String())
		if !ok {
			return "", false, fmt.Errorf("number %s out of range", t)
		}
		return s, true, nil
	default:
		return "", false, fmt.Errorf("expected string or number, got %T", v)
	}
}
