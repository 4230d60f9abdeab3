package calculator

// Calculate applies operation to number1 and number2.
//
// Division fails when number2 compares equal to zero, which includes -0.
// No other IEEE-754 result is treated as an error: an infinite or NaN
// result is returned as is.
func Calculate(number1, number2 float64, operation string) (float64, error) {
	switch Operation(operation) {
	case OpAdd:
		return number1 + number2, nil
	case OpSubtract:
		return number1 - number2, nil
	case OpMultiply:
		return number1 * number2, nil
	case OpDivide:
		if number2 == 0 {
			return 0, divisionByZeroError()
		}
		return number1 / number2, nil
	default:
		return 0, unsupportedOperationError(operation)
	}
}

// Evaluate validates req, runs it through Calculate and builds its response.
// The response always echoes the request's operands and operation.
func Evaluate(req CalculationRequest) (CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return FailedResponse(req, err), err
	}

	resp := echo(req)

	result, err := Calculate(*req.Number1, *req.Number2, *req.Operation)
	if err != nil {
		resp.Message = err.Error()
		return resp, err
	}

	r := Float(result)
	resp.Result = &r
	resp.Success = true
	resp.Message = MessageSuccess
	return resp, nil
}

// FailedResponse builds the response for a request that failed with err
// before or during calculation.
func FailedResponse(req CalculationRequest, err error) CalculationResponse {
	resp := echo(req)
	resp.Message = err.Error()
	return resp
}

func echo(req CalculationRequest) CalculationResponse {
	return CalculationResponse{
		Number1:   copyFloat(req.Number1),
		Number2:   copyFloat(req.Number2),
		Operation: copyString(req.Operation),
	}
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
