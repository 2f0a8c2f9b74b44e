package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/romancalc/internal/numeral"
)

func TestConvertCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, testDependencies(t), "convert", "MCMXCIV", "IIII", "XIX")

	require.NoError(t, err)
	assert.Equal(t,
		"MCMXCIV = 1994 (One Thousand Nine Hundred Ninety Four)\nIIII = 4 (Four)\nXIX = 19 (Nineteen)\n",
		out)
}

func TestConvertCommandInvalid(t *testing.T) {
	t.Parallel()

	_, err := execute(t, testDependencies(t), "convert", "XII", "ABC")

	require.ErrorIs(t, err, numeral.ErrInvalidNumeral)
	assert.Contains(t, err.Error(), `cannot convert "ABC"`)
}
