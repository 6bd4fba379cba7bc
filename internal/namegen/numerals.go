package namegen

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const persianZero = '۰'

func persianDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return persianZero + (r - '0')
	}
	return r
}

// ToPersianDigits rewrites every ASCII digit in s as its Persian numeral.
func ToPersianDigits(s string) string {
	out, _, err := transform.String(runes.Map(persianDigit), s)
	if err != nil {
		return s
	}
	return out
}
