package calculator

import "errors"

// Operation identifies one of the four supported arithmetic operations. The
// set is closed; anything else is rejected before dispatch.
type Operation string

const (
	OpAdd      Operation = "Add"
	OpSub      Operation = "Sub"
	OpMultiply Operation = "Multiply"
	OpDivide   Operation = "Divide"
)

var (
	ErrDivisionByZero       = errors.New("cannot divide by zero")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// ParseOperation maps the wire name of an operation to its Operation value.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OpAdd, OpSub, OpMultiply, OpDivide:
		return op, nil
	default:
		return "", ErrUnsupportedOperation
	}
}

func add(a, b float64) float64      { return a + b }
func subtract(a, b float64) float64 { return a - b }
func multiply(a, b float64) float64 { return a * b }
func divide(a, b float64) float64   { return a / b }

// Validate rejects bad input before any arithmetic runs. Division by zero is
// an input error caught here, not a failure during dispatch.
func Validate(b float64, op Operation) error {
	switch op {
	case OpAdd, OpSub, OpMultiply:
		return nil
	case OpDivide:
		if b == 0 {
			return ErrDivisionByZero
		}
		return nil
	default:
		return ErrUnsupportedOperation
	}
}

// Compute validates the operands and dispatches over the closed operation set.
func Compute(a, b float64, op Operation) (float64, error) {
	if err := Validate(b, op); err != nil {
		return 0, err
	}
	switch op {
	case OpAdd:
		return add(a, b), nil
	case OpSub:
		return subtract(a, b), nil
	case OpMultiply:
		return multiply(a, b), nil
	default:
		return divide(a, b), nil
	}
}
