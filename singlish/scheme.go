package singlish

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"errors"
	"fmt"
	"strings"
)

// SchemeDetails of a scheme
type SchemeDetails struct {
	Identifier   string
	LangCode     string
	DisplayName  string
	Author       string
	CompiledDate string
	IsStable     bool
}

// SpecialConsonantRule maps a marker pattern straight to a glyph.
// These rewrite before every other class, so \n is the anusvara and
// never the consonant n.
type SpecialConsonantRule struct {
	Pattern string
	Glyph   string
}

// ConsonantRule maps a Latin pattern to a Sinhala consonant glyph.
// The glyph carries the inherent vowel; the passes add a virama when
// no vowel follows.
type ConsonantRule struct {
	Pattern string
	Glyph   string
}

// VowelRule maps a Latin pattern to the independent vowel letter and
// the combining sign written after a consonant. Modifier is empty for
// the inherent vowel.
type VowelRule struct {
	Pattern     string
	Independent string
	Modifier    string
}

// DiacriticSuffixRule maps a vocalic-r suffix to its combining sign.
type DiacriticSuffixRule struct {
	Suffix string
	Sign   string
}

// Scheme is an ordered rule table. Order is priority: within a class,
// earlier rows rewrite first, so a longer pattern must be listed
// before any pattern that prefixes it. Validate enforces this.
type Scheme struct {
	Details SchemeDetails

	SpecialConsonants []SpecialConsonantRule
	Consonants        []ConsonantRule
	Vowels            []VowelRule
	DiacriticSuffixes []DiacriticSuffixRule
}

// Symbol is one rule row in class-agnostic form, the shape rows take
// in a symbol store. Value1 holds the glyph, or the independent form
// for a vowel; Value2 holds the combining form where one exists.
type Symbol struct {
	Type    int
	Pattern string
	Value1  string
	Value2  string
}

/* Validation failures callers may want to distinguish */
var ErrAmbiguousRule = errors.New("same pattern with a different replacement")
var ErrRuleOrder = errors.New("pattern listed before a longer pattern it prefixes")

// One substitution of a pass
type rewrite struct {
	pattern     string
	replacement string
}

// pass is an ordered rewrite list. Application is rule-major: a
// rewrite replaces globally over the whole string before the next
// rule runs. The order is observable, e.g. in the vowels pass "auu"
// resolves its "uu" before the "au" earlier in the string is
// considered, so a position-major scanner is not equivalent.
type pass struct {
	id       int
	name     string
	rewrites []rewrite
}

// Symbols returns the rows of one rule class in table order.
func (scheme *Scheme) Symbols(class int) []Symbol {
	var rows []Symbol

	switch class {
	case SINGLISH_SYMBOL_SPECIAL_CONSONANT:
		for _, rule := range scheme.SpecialConsonants {
			rows = append(rows, Symbol{class, rule.Pattern, rule.Glyph, ""})
		}
	case SINGLISH_SYMBOL_CONSONANT:
		for _, rule := range scheme.Consonants {
			rows = append(rows, Symbol{class, rule.Pattern, rule.Glyph, ""})
		}
	case SINGLISH_SYMBOL_VOWEL:
		for _, rule := range scheme.Vowels {
			rows = append(rows, Symbol{class, rule.Pattern, rule.Independent, rule.Modifier})
		}
	case SINGLISH_SYMBOL_DIACRITIC_SUFFIX:
		for _, rule := range scheme.DiacriticSuffixes {
			rows = append(rows, Symbol{class, rule.Suffix, rule.Sign, ""})
		}
	}

	return rows
}

// ClassName gives a readable name for a rule class
func ClassName(class int) string {
	switch class {
	case SINGLISH_SYMBOL_SPECIAL_CONSONANT:
		return "special consonant"
	case SINGLISH_SYMBOL_CONSONANT:
		return "consonant"
	case SINGLISH_SYMBOL_VOWEL:
		return "vowel"
	case SINGLISH_SYMBOL_DIACRITIC_SUFFIX:
		return "diacritic suffix"
	default:
		return fmt.Sprintf("class %d", class)
	}
}

// Validate fails fast on a table the passes cannot apply safely.
// A broken table is a configuration error of the scheme, caught here
// once, never a runtime concern of Convert.
func (scheme *Scheme) Validate() error {
	if len(scheme.Consonants) == 0 || len(scheme.Vowels) == 0 {
		return fmt.Errorf("scheme %s: consonant and vowel tables must not be empty", scheme.Details.Identifier)
	}

	classes := []int{
		SINGLISH_SYMBOL_SPECIAL_CONSONANT,
		SINGLISH_SYMBOL_CONSONANT,
		SINGLISH_SYMBOL_VOWEL,
		SINGLISH_SYMBOL_DIACRITIC_SUFFIX,
	}

	for _, class := range classes {
		if err := validateClass(class, scheme.Symbols(class)); err != nil {
			return err
		}
	}

	return nil
}

func validateClass(class int, rows []Symbol) error {
	seen := map[string]Symbol{}

	for i, row := range rows {
		if row.Pattern == "" {
			return fmt.Errorf("%s rule %d: empty pattern", ClassName(class), i)
		}
		if row.Value1 == "" {
			return fmt.Errorf("%s rule '%s': empty replacement", ClassName(class), row.Pattern)
		}

		if prev, ok := seen[row.Pattern]; ok {
			// Duplicate rows with the same replacement are harmless,
			// the later one just never matches anything new
			if prev.Value1 != row.Value1 || prev.Value2 != row.Value2 {
				return fmt.Errorf("%s rule '%s': %w", ClassName(class), row.Pattern, ErrAmbiguousRule)
			}
			continue
		}
		seen[row.Pattern] = row
	}

	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			if rows[i].Pattern == rows[j].Pattern {
				continue
			}
			if strings.HasPrefix(rows[j].Pattern, rows[i].Pattern) {
				return fmt.Errorf("%s rule '%s' listed before '%s': %w", ClassName(class), rows[i].Pattern, rows[j].Pattern, ErrRuleOrder)
			}
		}
	}

	return nil
}

// compile expands the class tables into the six passes. Expansion
// happens once per engine, so longest-first ordering is fixed by
// construction and never re-derived per call.
func (scheme *Scheme) compile() []pass {
	special := pass{PASS_SPECIAL_CONSONANTS, "special-consonants", nil}
	for _, rule := range scheme.SpecialConsonants {
		special.rewrites = append(special.rewrites, rewrite{rule.Pattern, rule.Glyph})
	}

	// Vocalic-r suffixes bind tighter than the rakaransha pass below:
	// "kru" is කෘ, never ක්‍රු
	suffixes := pass{PASS_DIACRITIC_SUFFIXES, "diacritic-suffixes", nil}
	for _, consonant := range scheme.Consonants {
		for _, suffix := range scheme.DiacriticSuffixes {
			suffixes.rewrites = append(suffixes.rewrites, rewrite{
				consonant.Pattern + suffix.Suffix,
				consonant.Glyph + suffix.Sign,
			})
		}
	}

	// A literal r after a consonant pattern forms the conjunct; the
	// vowel-attached forms go first so "kra" isn't split into "kr"+"a"
	rakaransha := pass{PASS_RAKARANSHA, "rakaransha", nil}
	for _, consonant := range scheme.Consonants {
		for _, vowel := range scheme.Vowels {
			rakaransha.rewrites = append(rakaransha.rewrites, rewrite{
				consonant.Pattern + "r" + vowel.Pattern,
				consonant.Glyph + RAKARANSHA + vowel.Modifier,
			})
		}
		rakaransha.rewrites = append(rakaransha.rewrites, rewrite{
			consonant.Pattern + "r",
			consonant.Glyph + RAKARANSHA,
		})
	}

	consonantVowels := pass{PASS_CONSONANT_VOWELS, "consonant-vowels", nil}
	for _, consonant := range scheme.Consonants {
		for _, vowel := range scheme.Vowels {
			consonantVowels.rewrites = append(consonantVowels.rewrites, rewrite{
				consonant.Pattern + vowel.Pattern,
				consonant.Glyph + vowel.Modifier,
			})
		}
	}

	bare := pass{PASS_BARE_CONSONANTS, "bare-consonants", nil}
	for _, consonant := range scheme.Consonants {
		bare.rewrites = append(bare.rewrites, rewrite{consonant.Pattern, consonant.Glyph + VIRAMA})
	}

	vowels := pass{PASS_VOWELS, "vowels", nil}
	for _, vowel := range scheme.Vowels {
		vowels.rewrites = append(vowels.rewrites, rewrite{vowel.Pattern, vowel.Independent})
	}

	return []pass{special, suffixes, rakaransha, consonantVowels, bare, vowels}
}
