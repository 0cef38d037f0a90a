package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issues is the flattened validation report returned with a 400.
type Issues struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func (i *Issues) AddField(field, message string) {
	i.FieldErrors[field] = append(i.FieldErrors[field], message)
}

func (i *Issues) AddForm(message string) {
	i.FormErrors = append(i.FormErrors, message)
}

func (i Issues) Empty() bool {
	return len(i.FormErrors) == 0 && len(i.FieldErrors) == 0
}

func NewIssues() Issues {
	return Issues{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
}

// FromError converts a binding error (decode or validation) into Issues.
func FromError(err error) Issues {
	issues := NewIssues()

	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			issues.AddField(fe.Field(), message(fe))
		}
	case errors.As(err, &typeErr):
		msg := fmt.Sprintf("Expected %s, received %s", kindName(typeErr.Type), typeErr.Value)
		if typeErr.Field == "" {
			issues.AddForm(msg)
		} else {
			issues.AddField(typeErr.Field, msg)
		}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		issues.AddForm("Malformed JSON")
	case errors.Is(err, io.EOF):
		issues.AddForm("Expected object, received nothing")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		key := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		issues.AddForm("Unrecognized key: " + key)
	default:
		issues.AddForm(err.Error())
	}

	return issues
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "Required"
	case "email":
		return "Invalid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Number must be greater than %s", fe.Param())
	case "datetime":
		return "Invalid datetime"
	}
	return "Invalid value"
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return t.String()
}
