package namegen

import (
	"fmt"
	"regexp"
)

var (
	ErrEmptyTable = func(table string) error {
		return fmt.Errorf("word table '%s' is empty", table)
	}

	ErrInvalidEntry = func(table string, index int) error {
		return fmt.Errorf("invalid entry %d in word table '%s'", index, table)
	}
)

var latinWord = regexp.MustCompile(`^[a-z]+$`)

// WordEntry is one lexical item in both native script and latin transliteration
type WordEntry struct {
	Native string
	Latin  string
}

func (w WordEntry) word(useLatin bool) string {
	if useLatin {
		return w.Latin
	}
	return w.Native
}

func init() {
	if err := validateTable("nouns", nouns); err != nil {
		panic(err)
	}
	if err := validateTable("adjectives", adjectives); err != nil {
		panic(err)
	}
}

func validateTable(table string, entries []WordEntry) error {
	if len(entries) == 0 {
		return ErrEmptyTable(table)
	}
	for i, e := range entries {
		if e.Native == "" || !latinWord.MatchString(e.Latin) {
			return ErrInvalidEntry(table, i)
		}
	}
	return nil
}

// NounEntries returns a copy of the noun table.
func NounEntries() []WordEntry {
	return append([]WordEntry(nil), nouns...)
}

// AdjectiveEntries returns a copy of the adjective table.
func AdjectiveEntries() []WordEntry {
	return append([]WordEntry(nil), adjectives...)
}
