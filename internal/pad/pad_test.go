package pad

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestLeft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		length int
		fill   rune
		want   string
	}{
		{name: "empty to zero", input: "", length: 0, fill: ' ', want: ""},
		{name: "empty to ten", input: "", length: 10, fill: ' ', want: "          "},
		{name: "zero length", input: "hello", length: 0, fill: ' ', want: "hello"},
		{name: "negative length", input: "hello", length: -3, fill: '*', want: "hello"},
		{name: "min int length", input: "hello", length: math.MinInt, fill: '*', want: "hello"},
		{name: "exact length", input: "hello", length: 5, fill: ' ', want: "hello"},
		{name: "shorter length", input: "hello", length: 2, fill: '*', want: "hello"},
		{name: "spaces", input: "hello", length: 10, fill: ' ', want: "     hello"},
		{name: "spaces long", input: "hello", length: 15, fill: ' ', want: "          hello"},
		{name: "nul", input: "hello", length: 10, fill: 0, want: "     hello"},
		{name: "nul long", input: "hello", length: 15, fill: 0, want: "          hello"},
		{name: "asterisk", input: "hello", length: 10, fill: '*', want: "*****hello"},
		{name: "dash", input: "hello", length: 10, fill: '-', want: "-----hello"},
		{name: "dash long", input: "hello", length: 15, fill: '-', want: "----------hello"},
		{name: "rocket", input: "hello", length: 10, fill: '🚀', want: "🚀🚀🚀🚀🚀hello"},
		{name: "rocket long", input: "hello", length: 15, fill: '🚀', want: "🚀🚀🚀🚀🚀🚀🚀🚀🚀🚀hello"},
		{name: "one short", input: "hello", length: 6, fill: '0', want: "0hello"},
		{name: "multibyte input", input: "héllo", length: 8, fill: '.', want: "..héllo"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Left(tt.input, tt.length, tt.fill))
		})
	}
}

func TestLeftLengthLimits(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "hello", "🚀"} {
		for _, length := range []int{
			math.MinInt,
			math.MinInt + 1,
			math.MinInt + len(input),
			-1,
			0,
			len(input),
		} {
			for _, fill := range []rune{0, ' ', '*', '🚀'} {
				assert.NotPanics(t, func() {
					assert.Equal(t, input, Left(input, length, fill), "length %d", length)
				})
			}
		}
	}
}

func TestLeftFastPathBoundary(t *testing.T) {
	t.Parallel()

	for deficit := 0; deficit <= 25; deficit++ {
		want := strings.Repeat(" ", deficit) + "x"

		assert.Equal(t, want, padRepeat("x", deficit, ' '), "deficit %d", deficit)
		assert.Equal(t, want, Left("x", deficit+1, ' '), "deficit %d", deficit)
		assert.Equal(t, want, Left("x", deficit+1, 0), "deficit %d", deficit)
		if deficit < len(spaces) {
			assert.Equal(t, want, padSpaces("x", deficit), "deficit %d", deficit)
		}
	}
}

func TestPadRepeatCount(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 200; n++ {
		got := padRepeat("", n, 'ж')
		assert.Equal(t, n, utf8.RuneCountInString(got), "n %d", n)
		assert.Equal(t, strings.Repeat("ж", n), got)
	}
}

func TestLeftProperties(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("long enough input is returned unchanged", prop.ForAll(
		func(s string, length int, fill rune) bool {
			if length > len(s) {
				length = len(s)
			}
			return Left(s, length, fill) == s
		},
		gen.AnyString(),
		gen.IntRange(-10, 100),
		gen.Rune(),
	))

	properties.Property("non-positive length never pads", prop.ForAll(
		func(s string, length int, fill rune) bool {
			return Left(s, length, fill) == s
		},
		gen.AnyString(),
		gen.IntRange(math.MinInt, 0),
		gen.Rune(),
	))

	properties.Property("ascii fill reaches the target length", prop.ForAll(
		func(s string, extra int, fill rune) bool {
			length := len(s) + extra
			return len(Left(s, length, fill)) == length
		},
		gen.AnyString(),
		gen.IntRange(1, 300),
		gen.RuneRange(0, 0x7f),
	))

	properties.Property("result ends with the input", prop.ForAll(
		func(s string, length int, fill rune) bool {
			return strings.HasSuffix(Left(s, length, fill), s)
		},
		gen.AnyString(),
		gen.IntRange(-10, 300),
		gen.Rune(),
	))

	properties.Property("fill repeated once per missing byte", prop.ForAll(
		func(s string, extra int, fill rune) bool {
			out := Left(s, len(s)+extra, fill)
			prefix := strings.TrimSuffix(out, s)
			return prefix == strings.Repeat(string(fill), extra)
		},
		gen.AlphaString(),
		gen.IntRange(1, 300),
		gen.RuneRange(1, 0x10ffff).SuchThat(utf8.ValidRune),
	))

	properties.Property("nul pads like a space", prop.ForAll(
		func(s string, length int) bool {
			return Left(s, length, 0) == Left(s, length, ' ')
		},
		gen.AnyString(),
		gen.IntRange(-10, 300),
	))

	properties.TestingRun(t)
}

func BenchmarkLeft(b *testing.B) {
	b.Run("short spaces", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Left("hello", 15, ' ')
		}
	})
	b.Run("long dashes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Left("hello", 1024, '-')
		}
	})
}
