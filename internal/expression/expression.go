// Package expression evaluates two-operand Roman numeral expressions such as "XIV * III".
package expression

import (
	"errors"
	"fmt"
	"strings"
)

// Operator is one of the supported arithmetic operator characters
type Operator byte

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

func (o Operator) String() string {
	return string(rune(o))
}

// ErrNoOperator is returned when a line contains none of the supported operators
var ErrNoOperator = errors.New("no operator found")

// priority is the order operators are searched for. The first operator in this
// list that appears anywhere in the line wins, regardless of its position.
var priority = []Operator{Add, Subtract, Multiply, Divide}

// Expression is a line split into its operands around a single operator
type Expression struct {
	Left     string
	Right    string
	Operator Operator
}

func (e Expression) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, e.Operator, e.Right)
}

// Parse detects the operator of line and splits the line on its first
// occurrence. Anything after a second occurrence stays in the right operand.
func Parse(line string) (Expression, error) {
	for _, op := range priority {
		left, right, found := strings.Cut(line, op.String())
		if !found {
			continue
		}
		return Expression{
			Left:     strings.TrimSpace(left),
			Right:    strings.TrimSpace(right),
			Operator: op,
		}, nil
	}
	return Expression{}, fmt.Errorf("%w in %q", ErrNoOperator, line)
}
