package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		op   Operation
		want float64
	}{
		{"add", 10, 5, OpAdd, 15},
		{"subtract", 10, 5, OpSub, 5},
		{"multiply", 10, 5, OpMultiply, 50},
		{"divide", 10, 2, OpDivide, 5},
		{"add negatives", -3, -4, OpAdd, -7},
		{"divide fractions", 1, 4, OpDivide, 0.25},
		{"multiply by zero", 7, 0, OpMultiply, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.a, tt.b, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_DivisionByZero(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 12.5, 1e9} {
		_, err := Compute(a, 0, OpDivide)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	}
}

func TestCompute_UnsupportedOperation(t *testing.T) {
	_, err := Compute(1, 2, Operation("Modulo"))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = Compute(1, 2, Operation(""))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(0, OpAdd))
	assert.NoError(t, Validate(0, OpSub))
	assert.NoError(t, Validate(0, OpMultiply))
	assert.NoError(t, Validate(2, OpDivide))
	assert.ErrorIs(t, Validate(0, OpDivide), ErrDivisionByZero)
	assert.ErrorIs(t, Validate(1, Operation("Power")), ErrUnsupportedOperation)
}

func TestParseOperation(t *testing.T) {
	for _, name := range []string{"Add", "Sub", "Multiply", "Divide"} {
		op, err := ParseOperation(name)
		require.NoError(t, err)
		assert.Equal(t, Operation(name), op)
	}

	// The set is closed and case-sensitive.
	for _, name := range []string{"add", "ADD", "Pow", ""} {
		_, err := ParseOperation(name)
		assert.ErrorIs(t, err, ErrUnsupportedOperation)
	}
}
