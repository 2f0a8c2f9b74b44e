package expression

import (
	"context"
	"errors"
	"fmt"

	"github.com/wizzomafizzo/romancalc/internal/logging"
	"github.com/wizzomafizzo/romancalc/internal/numeral"
	"github.com/wizzomafizzo/romancalc/internal/words"
)

// Result texts written in place of words when a line cannot be evaluated
const (
	TextInvalidExpression   = "Invalid Expression"
	TextInvalidNumeral      = "Invalid Roman Numeral in Expression"
	TextDivisionByZero      = "Division by zero error"
	TextUnsupportedOperator = "Unsupported operator"
	TextOverflow            = "Result out of range"
)

// Result is the outcome of evaluating one line. Text is always set: the
// rendered words on success, a descriptive message otherwise.
type Result struct {
	Err        error
	Line       string
	Text       string
	Expression Expression
	Left       int64
	Right      int64
	Value      int64
}

// Failed reports whether the line produced an error message instead of words
func (r Result) Failed() bool {
	return r.Err != nil
}

// Message maps an evaluation error to the text written for its line
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoOperator):
		return TextInvalidExpression
	case errors.Is(err, numeral.ErrInvalidNumeral):
		return TextInvalidNumeral
	case errors.Is(err, ErrDivisionByZero):
		return TextDivisionByZero
	case errors.Is(err, ErrUnsupportedOperator):
		return TextUnsupportedOperator
	case errors.Is(err, ErrOverflow):
		return TextOverflow
	default:
		return err.Error()
	}
}

// Diagnostics returns the console lines describing r: the decimal equation
// on success, otherwise the part of the line that was rejected. Division by
// zero has no diagnostic beyond its result text.
func Diagnostics(r Result) []string {
	switch {
	case r.Err == nil:
		return []string{fmt.Sprintf("%d %s %d = %d", r.Left, r.Expression.Operator, r.Right, r.Value)}
	case errors.Is(r.Err, ErrNoOperator):
		return []string{"Invalid Expression: " + r.Line}
	case errors.Is(r.Err, numeral.ErrInvalidNumeral):
		var lines []string
		for _, operand := range []string{r.Expression.Left, r.Expression.Right} {
			if !numeral.IsValid(operand) {
				lines = append(lines, "Invalid Roman Numeral: "+operand)
			}
		}
		return lines
	case errors.Is(r.Err, ErrUnsupportedOperator):
		return []string{"Unsupported operator: " + r.Expression.Operator.String()}
	case errors.Is(r.Err, ErrOverflow):
		return []string{fmt.Sprintf("%s: %s", TextOverflow, r.Expression)}
	default:
		return nil
	}
}

// Evaluate parses line, converts both operands, applies the operator and
// renders the value in words. It keeps no state between calls.
func Evaluate(ctx context.Context, line string) Result {
	log := logging.Get(ctx)
	result := Result{Line: line}

	fail := func(err error) Result {
		result.Err = err
		result.Text = Message(err)
		return result
	}

	expr, err := Parse(line)
	if err != nil {
		log.Debug().Str("line", line).Msg("Invalid expression")
		return fail(err)
	}
	result.Expression = expr

	left, leftErr := numeral.Parse(expr.Left)
	right, rightErr := numeral.Parse(expr.Right)
	if err = errors.Join(leftErr, rightErr); err != nil {
		log.Debug().Err(err).Str("line", line).Msg("Invalid roman numeral")
		return fail(err)
	}
	result.Left, result.Right = left, right

	value, err := Apply(left, right, expr.Operator)
	if err != nil {
		log.Debug().Err(err).Str("line", line).Msg("Arithmetic failed")
		return fail(err)
	}
	result.Value = value

	log.Debug().
		Int64("left", left).
		Str("operator", expr.Operator.String()).
		Int64("right", right).
		Int64("result", value).
		Msgf("%d %s %d = %d", left, expr.Operator, right, value)

	result.Text = words.Render(value)
	return result
}

// EvaluateString returns only the text of Evaluate
func EvaluateString(ctx context.Context, line string) string {
	return Evaluate(ctx, line).Text
}
