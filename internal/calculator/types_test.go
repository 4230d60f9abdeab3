package calculator

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestFloatMarshalJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 15, want: `15`},
		{in: 2.5, want: `2.5`},
		{in: -0.125, want: `-0.125`},
		{in: 1e300, want: `1e+300`},
		{in: math.Inf(1), want: `"Infinity"`},
		{in: math.Inf(-1), want: `"-Infinity"`},
		{in: math.NaN(), want: `"NaN"`},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got, err := json.Marshal(Float(tc.in))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestFloatUnmarshalJSONAcceptsNonFiniteStrings(t *testing.T) {
	var f Float
	if err := json.Unmarshal([]byte(`"-Infinity"`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !math.IsInf(float64(f), -1) {
		t.Fatalf("expected -Inf, got %g", float64(f))
	}

	if err := json.Unmarshal([]byte(`"seven"`), &f); err == nil {
		t.Fatal("expected error for arbitrary string")
	}
}

func TestCalculationResponseJSONShape(t *testing.T) {
	success, err := Evaluate(NewRequest(10, 5, OpAdd))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	body, err := json.Marshal(success)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"number1":10,"number2":5,"operation":"+","result":15,"success":true,"message":"Calculation successful"}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}

	failure, _ := Evaluate(NewRequest(10, 0, OpDivide))
	body, err = json.Marshal(failure)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), `"result"`) {
		t.Fatalf("expected result to be omitted on failure, got %s", body)
	}

	// Absent request fields stay absent in the echo.
	number1 := 10.0
	partial := CalculationRequest{Number1: &number1}
	body, err = json.Marshal(FailedResponse(partial, partial.Validate()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want = `{"number1":10,"success":false,"message":"Second number is required"}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}
