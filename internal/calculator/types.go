package calculator

import (
	"encoding/json"
	"math"
	"strconv"
)

// Operation is an arithmetic operation symbol.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "*"
	OpDivide   Operation = "/"
)

const supportedList = "+, -, *, /"

// MessageSuccess is the message carried by every successful response.
const MessageSuccess = "Calculation successful"

// CalculationRequest is the JSON body for POST /api/calculator/calculate.
// Fields are pointers so a missing field can be told apart from a zero.
type CalculationRequest struct {
	Number1   *float64 `json:"number1" validate:"required"`
	Number2   *float64 `json:"number2" validate:"required"`
	Operation *string  `json:"operation" validate:"required,min=1"`
}

// NewRequest builds a complete request.
func NewRequest(number1, number2 float64, op Operation) CalculationRequest {
	s := string(op)
	return CalculationRequest{Number1: &number1, Number2: &number2, Operation: &s}
}

// Float is a float64 that encodes NaN and the infinities as JSON strings,
// since JSON has no literal for them.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			*f = Float(math.NaN())
			return nil
		case "Infinity":
			*f = Float(math.Inf(1))
			return nil
		case "-Infinity":
			*f = Float(math.Inf(-1))
			return nil
		}
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// CalculationResponse is the JSON response for POST /api/calculator/calculate.
// Result is absent on failure. Operands absent from the request stay absent.
type CalculationResponse struct {
	Number1   *float64 `json:"number1,omitempty"`
	Number2   *float64 `json:"number2,omitempty"`
	Operation *string  `json:"operation,omitempty"`
	Result    *Float   `json:"result,omitempty"`
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
}

// ChainStep describes a single step in a chained calculation. Both fields
// are required, like the operands of a single calculation.
type ChainStep struct {
	Operation *string  `json:"operation" validate:"required,min=1"` // "+", "-", "*", "/"
	Value     *float64 `json:"value" validate:"required"`           // the operand applied to the running total
}

// ChainRequest is the JSON body for POST /api/calculator/chain.
type ChainRequest struct {
	Initial *float64    `json:"initial" validate:"required"`
	Steps   []ChainStep `json:"steps" validate:"required,min=1,dive"`
}

// ChainResponse is the JSON response for POST /api/calculator/chain.
type ChainResponse struct {
	Initial *float64      `json:"initial,omitempty"`
	Steps   []ChainResult `json:"steps"`
	Result  *Float        `json:"result,omitempty"`
	Success bool          `json:"success"`
	Message string        `json:"message"`
}

// ChainResult records one executed step.
type ChainResult struct {
	Operation string  `json:"operation"`
	Value     float64 `json:"value"`
	Result    Float   `json:"result"`
}
