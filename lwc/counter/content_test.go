package counter

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countString(t *testing.T, s string) (lines, words, bytes uint64, chars *uint64, valid bool) {
	t.Helper()
	cc, err := Count(strings.NewReader(s), "in", 0)
	require.NoError(t, err)
	return cc.Lines, cc.Words, cc.Bytes, cc.Chars, cc.ValidUTF8
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		input string
		lines uint64
	}{
		{"", 0},
		{"abc", 1},
		{"abc\n", 1},
		{"abc\ndef\n", 2},
		{"abc\ndef", 2},
		{"\n", 1},
		{"\n\n\n", 3},
		{"a\n\nb", 3},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.input, "\n", `\n`), func(t *testing.T) {
			lines, _, _, _, _ := countString(t, tt.input)
			assert.Equal(t, tt.lines, lines)
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		words uint64
	}{
		{"empty", "", 0},
		{"leading and repeated spaces", "  a  b   c", 3},
		{"all whitespace", " \t\n\r\f\v  \n", 0},
		{"tabs and newlines", "one\ttwo\nthree\r\nfour", 4},
		{"single word", "word", 1},
		{"non-breaking space is not a separator", "a b", 1},
		{"invalid bytes still form words", "\xff\xfe x", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, words, _, _, _ := countString(t, tt.input)
			assert.Equal(t, tt.words, words)
		})
	}
}

func TestCountEmptyInput(t *testing.T) {
	lines, words, n, chars, valid := countString(t, "")

	assert.Zero(t, lines)
	assert.Zero(t, words)
	assert.Zero(t, n)
	require.NotNil(t, chars)
	assert.Zero(t, *chars)
	assert.True(t, valid)
}

func TestCountCharsOnValidUTF8(t *testing.T) {
	input := "héllo wörld\n日本語\n🙂"

	_, _, n, chars, valid := countString(t, input)

	assert.True(t, valid)
	require.NotNil(t, chars)
	assert.Equal(t, uint64(utf8.RuneCountInString(input)), *chars)
	assert.Equal(t, uint64(len(input)), n)
	assert.LessOrEqual(t, *chars, n)
}

func TestCountInvalidUTF8FallsBackToBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"stray continuation", "abc\x80def\n"},
		{"overlong slash", "\xc0\xaf"},
		{"surrogate", "\xed\xa0\x80"},
		{"above max rune", "\xf4\x90\x80\x80"},
		{"truncated at end", "ok \xe6\x97"},
		{"invalid lead byte", "\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, utf8.ValidString(tt.input), "fixture must be invalid")

			lines, _, n, chars, valid := countString(t, tt.input)

			assert.False(t, valid)
			assert.Nil(t, chars)
			assert.Equal(t, uint64(len(tt.input)), n)
			assert.Equal(t, uint64(strings.Count(tt.input, "\n")+boolToInt(!strings.HasSuffix(tt.input, "\n"))), lines)
		})
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestMultiByteSequenceAcrossReads(t *testing.T) {
	input := strings.Repeat("日本", 1000) + "\n"

	// OneByteReader forces every sequence to straddle Read calls
	cc, err := Count(iotest.OneByteReader(strings.NewReader(input)), "x", 0)
	require.NoError(t, err)

	assert.True(t, cc.ValidUTF8)
	require.NotNil(t, cc.Chars)
	assert.Equal(t, uint64(2001), *cc.Chars)
	assert.Equal(t, uint64(1), cc.Lines)
	assert.Equal(t, uint64(1), cc.Words)
}

func TestSmallBufferMatchesDefault(t *testing.T) {
	input := "the quick\tbrown fox\njumps över\n\nthe lazy dög"

	small, err := Count(strings.NewReader(input), "p", 3)
	require.NoError(t, err)
	def, err := Count(strings.NewReader(input), "p", 0)
	require.NoError(t, err)

	assert.Equal(t, def, small)
}

func TestReadErrorDiscardsPartialCount(t *testing.T) {
	boom := errors.New("device went away")
	r := io.MultiReader(strings.NewReader("some data\n"), iotest.ErrReader(boom))

	cc, err := Count(r, "broken", 0)

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, cc.Bytes)
	assert.Empty(t, cc.Path)
}

func TestCountIsIdempotent(t *testing.T) {
	input := "repeat me\nplease ✓\n"

	first, err := Count(strings.NewReader(input), "r", 0)
	require.NoError(t, err)
	second, err := Count(strings.NewReader(input), "r", 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Random byte sequences: byte count is exact and the UTF-8 verdict and rune
// count agree with the standard library.
func TestCountAgreesWithStdlibOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []string{"a", "b", " ", "\n", "\t", "é", "日", "🙂", "\x80", "\xff", "\xe6", "\xed\xa0\x80"}

	for i := 0; i < 500; i++ {
		var sb bytes.Buffer
		for j := rng.IntN(64); j > 0; j-- {
			sb.WriteString(alphabet[rng.IntN(len(alphabet))])
		}
		input := sb.Bytes()

		cc, err := Count(bytes.NewReader(input), "rand", 1+rng.IntN(8))
		require.NoError(t, err)

		assert.Equal(t, uint64(len(input)), cc.Bytes)
		assert.Equal(t, uint64(len(bytes.Fields(input))), cc.Words, "input %q", input)

		if utf8.Valid(input) {
			require.True(t, cc.ValidUTF8, "input %q", input)
			require.NotNil(t, cc.Chars)
			assert.Equal(t, uint64(utf8.RuneCount(input)), *cc.Chars)
			assert.LessOrEqual(t, *cc.Chars, cc.Bytes)
		} else {
			assert.False(t, cc.ValidUTF8, "input %q", input)
			assert.Nil(t, cc.Chars)
		}
	}
}

func BenchmarkCount(b *testing.B) {
	data := bytes.Repeat([]byte("lorem ipsum dolor sit amet, ünïcödé\n"), 4096)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Count(bytes.NewReader(data), "bench", 0); err != nil {
			b.Fatal(err)
		}
	}
}
