package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/wizzomafizzo/romancalc/internal/constants"
)

// ExpressionPrompt is shown before each interactively entered expression
const ExpressionPrompt = `Enter an expression (or type "done" to finish): `

// ErrCancelled is returned when the user aborts input with Ctrl+C
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Prompt reads one line and adds non-empty input to the in-session history
func (p *LinerPrompter) Prompt(text string) (string, error) {
	input, err := p.State.Prompt(text)
	if err != nil {
		return "", err //nolint:wrapcheck // callers classify liner errors
	}
	if strings.TrimSpace(input) != "" {
		p.AppendHistory(input)
	}
	return input, nil
}

// IsDone reports whether input is the keyword that ends interactive entry.
// The comparison ignores case but not surrounding whitespace.
func IsDone(input string) bool {
	return strings.EqualFold(input, constants.DoneKeyword)
}

type promptResult struct {
	err   error
	input string
}

// promptContext reads one line in a separate goroutine so a cancelled
// context is noticed while the read is still blocked. The goroutine exits
// whenever the prompter returns; its result is then dropped.
func promptContext(ctx context.Context, prompter Prompter, text string) (string, error) {
	done := make(chan promptResult, 1)
	go func() {
		input, err := prompter.Prompt(text)
		done <- promptResult{input: input, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.input, res.err
	}
}

// CollectExpressions prompts until the user types "done" (any case) and returns
// the entered lines in order. End of input finishes collection the same way;
// Ctrl+C or a cancelled context returns ErrCancelled.
func CollectExpressions(ctx context.Context, prompter Prompter) ([]string, error) {
	coloredPrompt := color.CyanString(ExpressionPrompt)

	var expressions []string
	for {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}

		input, err := promptContext(ctx, prompter, coloredPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return expressions, nil
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				return nil, ErrCancelled
			}
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
			}
			return nil, fmt.Errorf("expression input failed: %w", err)
		}

		if IsDone(input) {
			return expressions, nil
		}
		expressions = append(expressions, input)
	}
}
