package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "single argument", args: []string{"IV + I"}, want: "Five"},
		{name: "split arguments", args: []string{"X", "/", "V"}, want: "Two"},
		{name: "division by zero", args: []string{"V / "}, want: "Division by zero error"},
		{name: "invalid numeral", args: []string{"XYZ + I"}, want: "Invalid Roman Numeral in Expression"},
		{name: "no operator", args: []string{"no operator here"}, want: "Invalid Expression"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, testDependencies(t), append([]string{"eval"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestEvalRequiresExpression(t *testing.T) {
	t.Parallel()

	_, err := execute(t, testDependencies(t), "eval")
	require.Error(t, err)
}

func TestEvalThenHistory(t *testing.T) {
	t.Parallel()
	deps := testDependencies(t)

	_, err := execute(t, deps, "eval", "X * X")
	require.NoError(t, err)
	_, err = execute(t, deps, "eval", "V / ")
	require.NoError(t, err)

	out, err := execute(t, deps, "history")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "V / -> ")
	assert.Contains(t, lines[0], "Division by zero error")
	assert.Contains(t, lines[1], "X * X -> One Hundred")
}

func TestEvalNoHistory(t *testing.T) {
	t.Parallel()
	deps := testDependencies(t)

	out, err := execute(t, deps, "eval", "--no-history", "MM - M")
	require.NoError(t, err)
	assert.Equal(t, "One Thousand", strings.TrimSpace(out))

	out, err = execute(t, deps, "history")
	require.NoError(t, err)
	assert.Equal(t, "No history yet", strings.TrimSpace(out))
}
