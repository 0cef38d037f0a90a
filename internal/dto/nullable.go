package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// NullableString distinguishes an omitted JSON key (Set false) from an
// explicit null (Set true, Valid false) and from a string value.
type NullableString struct {
	Set   bool
	Valid bool
	Value string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		n.Value = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{
			Value: jsonKind(data),
			Type:  reflect.TypeOf(""),
		}
	}

	n.Valid = true
	n.Value = s
	return nil
}

// Normalized returns the trimmed value, or nil for null and blank strings.
func (n NullableString) Normalized() *string {
	if !n.Valid {
		return nil
	}
	v := strings.TrimSpace(n.Value)
	if v == "" {
		return nil
	}
	return &v
}

func jsonKind(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "nothing"
	}
	switch data[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case '"':
		return "string"
	}
	return "number"
}
