package expression

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivisionByZero is returned by Apply for "/" with a zero right operand.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnsupportedOperator is returned for an Operator Apply has no case for.
	ErrUnsupportedOperator = errors.New("unsupported operator")
	// ErrOverflow is returned when a sum or product does not fit in an int64.
	ErrOverflow = errors.New("result out of range")
)

// Apply combines left and right with op. Subtraction yields the absolute
// difference and division is floor division.
func Apply(left, right int64, op Operator) (int64, error) {
	switch op {
	case Add:
		if (right > 0 && left > math.MaxInt64-right) || (right < 0 && left < math.MinInt64-right) {
			return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, left, right)
		}
		return left + right, nil
	case Subtract:
		return absDiff(left, right)
	case Multiply:
		return multiply(left, right)
	case Divide:
		return floorDiv(left, right)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, op.String())
	}
}

func absDiff(left, right int64) (int64, error) {
	if (right < 0 && left > math.MaxInt64+right) || (right > 0 && left < math.MinInt64+right) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, left, right)
	}
	d := left - right
	if d == math.MinInt64 {
		return 0, fmt.Errorf("%w: |%d - %d|", ErrOverflow, left, right)
	}
	if d < 0 {
		return -d, nil
	}
	return d, nil
}

func multiply(left, right int64) (int64, error) {
	if left == 0 || right == 0 {
		return 0, nil
	}
	product := left * right
	if product/right != left ||
		(left == -1 && right == math.MinInt64) ||
		(right == -1 && left == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, left, right)
	}
	return product, nil
}

func floorDiv(left, right int64) (int64, error) {
	if right == 0 {
		return 0, fmt.Errorf("%w: %d / %d", ErrDivisionByZero, left, right)
	}
	if left == math.MinInt64 && right == -1 {
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, left, right)
	}
	q := left / right
	if left%right != 0 && (left < 0) != (right < 0) {
		q--
	}
	return q, nil
}
