package namegen

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource returns its values in order, wrapping around.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

const (
	joojeIndex   = 0
	hoshyarIndex = 2
	asbIndex     = 6
)

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		name      string
		draws     []int
		maxSuffix int
		delimiter rune
		useLatin  bool
		expected  string
	}{
		{
			name:      "native heh ending takes zwnj yeh",
			draws:     []int{joojeIndex, hoshyarIndex},
			delimiter: ' ',
			expected:  "جوجه\u200cی هشیار",
		},
		{
			name:      "latin e ending with suffix",
			draws:     []int{joojeIndex, hoshyarIndex, 41},
			maxSuffix: 10000,
			delimiter: '-',
			useLatin:  true,
			expected:  "jooje\u200cye-hoshyar-42",
		},
		{
			name:      "latin consonant ending takes e",
			draws:     []int{asbIndex, hoshyarIndex},
			delimiter: '-',
			useLatin:  true,
			expected:  "asbe-hoshyar",
		},
		{
			name:      "native consonant ending unchanged",
			draws:     []int{asbIndex, hoshyarIndex},
			delimiter: '_',
			expected:  "اسب_هشیار",
		},
		{
			name:      "native suffix uses persian numerals",
			draws:     []int{asbIndex, hoshyarIndex, 1906},
			maxSuffix: 10000,
			delimiter: ' ',
			expected:  "اسب هشیار ۱۹۰۷",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&seqSource{vals: tt.draws})
			name, err := g.Generate(tt.maxSuffix, tt.delimiter, tt.useLatin)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestGenerateDegenerateRange(t *testing.T) {
	g := New(&seqSource{vals: []int{0}})
	for _, bound := range []int{1, -1, -10000} {
		name, err := g.Generate(bound, '-', true)
		assert.ErrorIs(t, err, ErrDegenerateRange)
		assert.Empty(t, name)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := New(rand.New(rand.NewSource(7))).Generate(500, '~', false)
	require.NoError(t, err)
	b, err := New(rand.New(rand.NewSource(7))).Generate(500, '~', false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenNative(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	asciiDigit := regexp.MustCompile(`[0-9]`)
	for i := 0; i < 1000; i++ {
		name := g.Gen()
		require.NotEmpty(t, name)
		assert.False(t, asciiDigit.MatchString(name), name)
		assert.True(t, isNativeName(name, " "), name)
	}
}

func isNativeName(name, delimiter string) bool {
	for _, n := range nouns {
		prefix := Link(n.Native, false) + delimiter
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		rest := strings.TrimPrefix(name, prefix)
		for _, a := range adjectives {
			if rest == a.Native {
				return true
			}
		}
	}
	return false
}

func TestGenerateLatinPattern(t *testing.T) {
	g := New(rand.New(rand.NewSource(2)))
	pattern := regexp.MustCompile("^[a-z]+(\u200cye|e)-[a-z]+$")
	for i := 0; i < 1000; i++ {
		name, err := g.Generate(0, '-', true)
		require.NoError(t, err)
		assert.Regexp(t, pattern, name)
	}
}

func TestGenIDSuffixRange(t *testing.T) {
	g := New(rand.New(rand.NewSource(3)))
	for i := 0; i < 1000; i++ {
		parts := strings.Split(g.GenID(), "-")
		require.Len(t, parts, 3)
		suffix, err := strconv.Atoi(parts[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 1)
		assert.Less(t, suffix, IDMaxSuffix)
	}
}

func TestSmallSuffixRange(t *testing.T) {
	g := New(rand.New(rand.NewSource(4)))
	for i := 0; i < 100; i++ {
		name, err := g.Generate(2, '-', true)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, "-1"), name)
	}
}

func TestNativeSuffixHasNoASCIIDigits(t *testing.T) {
	g := New(rand.New(rand.NewSource(5)))
	for i := 0; i < 500; i++ {
		name, err := g.Generate(IDMaxSuffix, '-', false)
		require.NoError(t, err)
		assert.NotRegexp(t, `[0-9]`, name)
		assert.Regexp(t, `-[۰-۹]+$`, name)
	}
}

func TestLinkRulesAreExclusive(t *testing.T) {
	// a native word ending in a latin vowel letter must never take the latin suffix
	assert.Equal(t, "abzo", Link("abzo", false))
	assert.Equal(t, "mooshe", Link("moosh", true))
	assert.Equal(t, "ahoo\u200cye", Link("ahoo", true))
	assert.Equal(t, "mahi\u200cye", Link("mahi", true))
	assert.Equal(t, "آهو\u200cی", Link("آهو", false))
	assert.Equal(t, "ماهی", Link("ماهی", false))
}

func TestPackageLevelGenerators(t *testing.T) {
	assert.NotEmpty(t, Gen())
	assert.Regexp(t, "^[a-z]+(\u200cye|e)-[a-z]+-[0-9]+$", GenID())
	_, err := Generate(1, ' ', false)
	assert.ErrorIs(t, err, ErrDegenerateRange)
}
