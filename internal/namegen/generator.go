package namegen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	zwnj = "\u200c"

	// IDMaxSuffix is the exclusive upper bound of identifier suffixes, giving 1 to 9999.
	IDMaxSuffix = 10000
)

var ErrDegenerateRange = fmt.Errorf("suffix range is empty, max suffix must be 0 or greater than 1")

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// globalSource uses the top level math/rand functions which are safe for concurrent use.
type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// Generator builds noun-adjective names from the word tables.
// A Generator is as safe for concurrent use as its Source.
type Generator struct {
	src Source
}

func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = New(nil)

// Generate returns a linked noun, the delimiter, an adjective and, when maxSuffix is
// positive, the delimiter and a number in [1, maxSuffix). Native names have their
// digits written as Persian numerals.
func (g *Generator) Generate(maxSuffix int, delimiter rune, useLatin bool) (string, error) {
	if maxSuffix != 0 {
		if err := checkRange(1, maxSuffix); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	noun := nouns[g.src.Intn(len(nouns))]
	b.WriteString(Link(noun.word(useLatin), useLatin))
	b.WriteRune(delimiter)
	adjective := adjectives[g.src.Intn(len(adjectives))]
	b.WriteString(adjective.word(useLatin))

	if maxSuffix > 0 {
		suffix, err := randRange(g.src, 1, maxSuffix)
		if err != nil {
			return "", err
		}
		b.WriteRune(delimiter)
		b.WriteString(strconv.Itoa(suffix))
	}

	if useLatin {
		return b.String(), nil
	}
	return ToPersianDigits(b.String()), nil
}

// Gen returns a native script name with its words separated by a space.
func (g *Generator) Gen() string {
	// constant arguments never produce an error
	name, _ := g.Generate(0, ' ', false)
	return name
}

// GenID returns a latin identifier such as "asbe-hoshyar-42".
func (g *Generator) GenID() string {
	name, _ := g.Generate(IDMaxSuffix, '-', true)
	return name
}

func Generate(maxSuffix int, delimiter rune, useLatin bool) (string, error) {
	return defaultGenerator.Generate(maxSuffix, delimiter, useLatin)
}

func Gen() string {
	return defaultGenerator.Gen()
}

func GenID() string {
	return defaultGenerator.GenID()
}

// Link appends the Ezafe linking suffix a noun takes before an adjective.
// Native words ending in heh or vav take ZWNJ+yeh, others take nothing.
// Latin words ending in e, i or o take ZWNJ+"ye", others take "e".
func Link(word string, useLatin bool) string {
	if useLatin {
		if strings.HasSuffix(word, "e") || strings.HasSuffix(word, "i") || strings.HasSuffix(word, "o") {
			return word + zwnj + "ye"
		}
		return word + "e"
	}
	if strings.HasSuffix(word, "ه") || strings.HasSuffix(word, "و") {
		return word + zwnj + "ی"
	}
	return word
}

func checkRange(lo, hi int) error {
	if hi <= lo {
		return ErrDegenerateRange
	}
	return nil
}

// randRange draws from the half open range [lo, hi).
func randRange(src Source, lo, hi int) (int, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	return lo + src.Intn(hi-lo), nil
}
