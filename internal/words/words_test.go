package words

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want string
		n    int64
	}{
		{n: 0, want: "Zero"},
		{n: 1, want: "One"},
		{n: 10, want: "Ten"},
		{n: 19, want: "Nineteen"},
		{n: 20, want: "Twenty"},
		{n: 42, want: "Forty Two"},
		{n: 100, want: "One Hundred"},
		{n: 110, want: "One Hundred Ten"},
		{n: 999, want: "Nine Hundred Ninety Nine"},
		{n: 1000, want: "One Thousand"},
		{n: 1001, want: "One Thousand One"},
		{n: 1994, want: "One Thousand Nine Hundred Ninety Four"},
		{n: 20015, want: "Twenty Thousand Fifteen"},
		{n: 1000000, want: "One Million"},
		{n: 1000001, want: "One Million One"},
		{n: 1002003, want: "One Million Two Thousand Three"},
		{n: 3000000000, want: "Three Billion"},
		{n: 1000000000000, want: "One Trillion"},
		{n: 5000000000000000000, want: "Five Quintillion"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Render(tt.n))
		})
	}
}

func TestRender_MaxInt64(t *testing.T) {
	t.Parallel()

	got := Render(math.MaxInt64)
	assert.True(t, strings.HasPrefix(got, "Nine Quintillion Two Hundred Twenty Three Quadrillion"), got)
	assert.True(t, strings.HasSuffix(got, "Eight Hundred Seven"), got)
}

func TestRender_Negative(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Negative Five", Render(-5))
	assert.True(t, strings.HasSuffix(Render(math.MinInt64), "Eight Hundred Eight"))
}

func TestRender_NoDoubleSpaces(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{1, 100, 1000, 1000100, 1010010, 999999999} {
		got := Render(n)
		assert.NotContains(t, got, "  ", "n=%d", n)
		assert.Equal(t, strings.TrimSpace(got), got, "n=%d", n)
	}
}

func TestRenderChunk(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderChunk(0))
	assert.Equal(t, "Five Hundred", RenderChunk(500))
	assert.Equal(t, "Five Hundred Thirteen", RenderChunk(513))
	assert.Equal(t, "Seven Hundred Eighty", RenderChunk(780))
	assert.Equal(t, "Six", RenderChunk(6))
}
