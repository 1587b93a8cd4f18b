package singlish

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Wire form of a scheme file. Kept apart from Scheme so the YAML
// field set can evolve without touching the engine types.
//
// Patterns that begin with a backslash must be single-quoted in YAML
// ('\n' the anusvara marker, not a newline). Invisible characters in
// glyph strings are best written as \uXXXX escapes in double quotes.
type schemeFile struct {
	Name         string `yaml:"name"`
	Identifier   string `yaml:"identifier"`
	LangCode     string `yaml:"lang-code"`
	Author       string `yaml:"author,omitempty"`
	CompiledDate string `yaml:"compiled-date,omitempty"`
	Stable       bool   `yaml:"stable"`

	SpecialConsonants []schemeFileRule  `yaml:"special-consonants"`
	Consonants        []schemeFileRule  `yaml:"consonants"`
	Vowels            []schemeFileVowel `yaml:"vowels"`
	DiacriticSuffixes []schemeFileRule  `yaml:"diacritic-suffixes"`
}

type schemeFileRule struct {
	Pattern string `yaml:"pattern"`
	Glyph   string `yaml:"glyph"`
}

type schemeFileVowel struct {
	Pattern     string `yaml:"pattern"`
	Independent string `yaml:"independent"`
	Modifier    string `yaml:"modifier,omitempty"`
}

func (sf *schemeFile) toScheme() *Scheme {
	scheme := Scheme{
		Details: SchemeDetails{
			Identifier:   sf.Identifier,
			LangCode:     sf.LangCode,
			DisplayName:  sf.Name,
			Author:       sf.Author,
			CompiledDate: sf.CompiledDate,
			IsStable:     sf.Stable,
		},
	}

	for _, rule := range sf.SpecialConsonants {
		scheme.SpecialConsonants = append(scheme.SpecialConsonants, SpecialConsonantRule{rule.Pattern, rule.Glyph})
	}
	for _, rule := range sf.Consonants {
		scheme.Consonants = append(scheme.Consonants, ConsonantRule{rule.Pattern, rule.Glyph})
	}
	for _, rule := range sf.Vowels {
		scheme.Vowels = append(scheme.Vowels, VowelRule{rule.Pattern, rule.Independent, rule.Modifier})
	}
	for _, rule := range sf.DiacriticSuffixes {
		scheme.DiacriticSuffixes = append(scheme.DiacriticSuffixes, DiacriticSuffixRule{rule.Pattern, rule.Glyph})
	}

	return &scheme
}

func schemeToFile(scheme *Scheme) *schemeFile {
	sf := schemeFile{
		Name:         scheme.Details.DisplayName,
		Identifier:   scheme.Details.Identifier,
		LangCode:     scheme.Details.LangCode,
		Author:       scheme.Details.Author,
		CompiledDate: scheme.Details.CompiledDate,
		Stable:       scheme.Details.IsStable,
	}

	for _, rule := range scheme.SpecialConsonants {
		sf.SpecialConsonants = append(sf.SpecialConsonants, schemeFileRule{rule.Pattern, rule.Glyph})
	}
	for _, rule := range scheme.Consonants {
		sf.Consonants = append(sf.Consonants, schemeFileRule{rule.Pattern, rule.Glyph})
	}
	for _, rule := range scheme.Vowels {
		sf.Vowels = append(sf.Vowels, schemeFileVowel{rule.Pattern, rule.Independent, rule.Modifier})
	}
	for _, rule := range scheme.DiacriticSuffixes {
		sf.DiacriticSuffixes = append(sf.DiacriticSuffixes, schemeFileRule{rule.Suffix, rule.Sign})
	}

	return &sf
}

// LoadSchemeFile reads a YAML scheme file and validates it. A table
// that fails validation is reported here as a configuration error;
// there is no silent fallback to the built-in scheme.
func LoadSchemeFile(filename string) (*Scheme, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var sf schemeFile
	if err = yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("invalid scheme file %s: %w", filename, err)
	}

	scheme := sf.toScheme()
	if err = scheme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scheme file %s: %w", filename, err)
	}

	return scheme, nil
}

// WriteSchemeFile emits a scheme as YAML. Round-trips with
// LoadSchemeFile; writing the built-in scheme out is the usual
// starting point for a custom one.
func WriteSchemeFile(filename string, scheme *Scheme) error {
	if err := scheme.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(schemeToFile(scheme))
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}
