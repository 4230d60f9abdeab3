package calculator

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// fieldMessages holds the message reported when a field fails validation,
// keyed by its JSON name.
var fieldMessages = map[string]string{
	"number1":   "First number is required",
	"number2":   "Second number is required",
	"operation": "Operation is required",
	"initial":   "Initial value is required",
	"steps":     "At least one step is required",
	"value":     "Value is required",
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeRequest reads a CalculationRequest from r and checks that every
// required field is present. Failures are *Error values of KindValidation.
func DecodeRequest(r io.Reader) (CalculationRequest, error) {
	var req CalculationRequest
	if err := decodeJSON(r, &req); err != nil {
		return req, err
	}
	return req, req.Validate()
}

// Validate checks that number1, number2 and a non-empty operation are present.
func (req CalculationRequest) Validate() error {
	return validateStruct(req)
}

// DecodeChainRequest reads a ChainRequest from r and checks that the initial
// value and at least one step are present.
func DecodeChainRequest(r io.Reader) (ChainRequest, error) {
	var req ChainRequest
	if err := decodeJSON(r, &req); err != nil {
		return req, err
	}
	return req, validateStruct(req)
}

func decodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	err := dec.Decode(dst)
	if err == nil {
		// The body must hold exactly one JSON value.
		var trailing json.RawMessage
		if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
			return validationError("Invalid request body")
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validationError("Invalid value for field %s", typeErr.Field)
	}
	return validationError("Invalid request body")
}

// validateStruct reports the first failing field in declaration order.
// Fields nested in a slice element are prefixed with their path, e.g.
// "steps[1].value: Value is required".
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return validationError("Invalid request body")
	}

	fe := fieldErrs[0]
	field := fe.Field()
	msg, ok := fieldMessages[field]
	if !ok {
		msg = "Invalid value"
	}

	// Namespace is "<Type>.<path>"; a path other than the bare field name
	// means the field sits inside a nested element.
	_, path, _ := strings.Cut(fe.Namespace(), ".")
	if path != "" && path != field {
		return validationError("%s: %s", path, msg)
	}
	if !ok {
		return validationError("Invalid value for field %s", field)
	}
	return validationError("%s", msg)
}
