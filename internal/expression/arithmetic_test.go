package expression

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		left, right int64
		op          Operator
		want        int64
	}{
		{name: "sum", left: 4, right: 1, op: Add, want: 5},
		{name: "difference", left: 10, right: 3, op: Subtract, want: 7},
		{name: "difference is absolute", left: 3, right: 10, op: Subtract, want: 7},
		{name: "difference of equals", left: 5, right: 5, op: Subtract, want: 0},
		{name: "product", left: 12, right: 12, op: Multiply, want: 144},
		{name: "product with zero", left: 0, right: 12, op: Multiply, want: 0},
		{name: "exact division", left: 10, right: 5, op: Divide, want: 2},
		{name: "floor division", left: 7, right: 2, op: Divide, want: 3},
		{name: "smaller dividend", left: 1, right: 1000, op: Divide, want: 0},
		{name: "negative floor division", left: -7, right: 2, op: Divide, want: -4},
		{name: "large sum", left: math.MaxInt64 - 1, right: 1, op: Add, want: math.MaxInt64},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(tt.left, tt.right, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantErr     error
		name        string
		left, right int64
		op          Operator
	}{
		{name: "division by zero", left: 5, right: 0, op: Divide, wantErr: ErrDivisionByZero},
		{name: "zero by zero", left: 0, right: 0, op: Divide, wantErr: ErrDivisionByZero},
		{name: "unsupported operator", left: 1, right: 1, op: Operator('%'), wantErr: ErrUnsupportedOperator},
		{name: "sum overflow", left: math.MaxInt64, right: 1, op: Add, wantErr: ErrOverflow},
		{name: "product overflow", left: math.MaxInt64 / 2, right: 3, op: Multiply, wantErr: ErrOverflow},
		{name: "min times minus one", left: math.MinInt64, right: -1, op: Multiply, wantErr: ErrOverflow},
		{name: "min over minus one", left: math.MinInt64, right: -1, op: Divide, wantErr: ErrOverflow},
		{name: "difference overflow", left: math.MaxInt64, right: -1, op: Subtract, wantErr: ErrOverflow},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Apply(tt.left, tt.right, tt.op)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}
