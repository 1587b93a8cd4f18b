package singlish

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only
 */

// The built-in Singlish scheme.
//
// Table order is priority order. A longer pattern always precedes the
// patterns it extends ("nndh" before "nnd" before "n", "aa" before
// "a"), which is what makes greedy typing work. Several
// patterns alias one glyph on purpose (v/w, kh/K, oo/u), ee/ii); they
// stay separate rows because the typing conventions, not a minimal
// table, are the contract with typists. Note that ")" belongs to the
// long-vowel patterns, so "a)" is ආ and not a parenthesis.

func sinhalaSpecialConsonants() []SpecialConsonantRule {
	return []SpecialConsonantRule{
		{`\n`, ANUSVARA},    // ං
		{`\h`, VISARGA},     // ඃ
		{`\N`, VELAR_NASAL}, // ඞ
		{`\R`, VOCALIC_R},   // ඍ
		{`R`, RAKARANSHA},
		{`\r`, RAKARANSHA},
	}
}

func sinhalaConsonants() []ConsonantRule {
	return []ConsonantRule{
		// Prenasalized and aspirated sounds
		{"nndh", "ඳ"},
		{"nnd", "ඬ"},
		{"nng", "ඟ"},
		{"mb", "ඹ"},
		{"GN", "ඥ"},
		{"KN", "ඤ"},
		{"Th", "ථ"},
		{"Dh", "ධ"},
		{"Ch", "ඡ"},
		{"kh", "ඛ"},
		{"gh", "ඝ"},
		{"th", "ත"},
		{"dh", "ද"},
		{"ch", "ච"},
		{"sh", "ශ"},
		{"Sh", "ෂ"},
		{"ph", "ඵ"},
		{"bh", "භ"},
		{"jh", "ඣ"},
		// Plain series
		{"k", "ක"},
		{"g", "ග"},
		{"t", "ට"},
		{"d", "ඩ"},
		{"n", "න"},
		{"p", "ප"},
		{"b", "බ"},
		{"m", "ම"},
		{"y", "ය"},
		{"r", "ර"},
		{"l", "ල"},
		{"v", "ව"},
		{"w", "ව"},
		{"s", "ස"},
		{"h", "හ"},
		{"f", "ෆ"},
		{"c", "ච"},
		{"j", "ජ"},
		{"x", "ක්ෂ"},
		// Capital aliases for the aspirated and retroflex series
		{"K", "ඛ"},
		{"G", "ඝ"},
		{"T", "ඨ"},
		{"D", "ඪ"},
		{"N", "ණ"},
		{"L", "ළ"},
		{"C", "ඡ"},
		{"J", "ඣ"},
		{"P", "ඵ"},
		{"B", "භ"},
		{"M", "ඹ"},
	}
}

func sinhalaVowels() []VowelRule {
	return []VowelRule{
		{"uu", "ඌ", "ූ"},
		{"oo", "ඌ", "ූ"},
		{"u)", "ඌ", "ූ"},
		{"aa", "ආ", "ා"},
		{"a)", "ආ", "ා"},
		{"AA", "ඈ", "ෑ"},
		{"Aa", "ඈ", "ෑ"},
		{"A)", "ඈ", "ෑ"},
		{"ae", "ඇ", "ැ"},
		{"ii", "ඊ", "ී"},
		{"i)", "ඊ", "ී"},
		{"ee", "ඊ", "ී"},
		{"ea", "ඒ", "ේ"},
		{"e)", "ඒ", "ේ"},
		{"ei", "ඒ", "ේ"},
		{"oe", "ඕ", "ෝ"},
		{"o)", "ඕ", "ෝ"},
		{"au", "ඖ", "ෞ"},
		{"ai", "ඓ", "ෛ"},
		{"I", "ඊ", "ී"},
		// Shorts last, the inherent a has no written sign
		{"a", "අ", ""},
		{"A", "ඇ", "ැ"},
		{"i", "ඉ", "ි"},
		{"e", "එ", "ෙ"},
		{"u", "උ", "ු"},
		{"o", "ඔ", "ො"},
	}
}

func sinhalaDiacriticSuffixes() []DiacriticSuffixRule {
	return []DiacriticSuffixRule{
		{"ruu", VOCALIC_RR_SIGN}, // ෲ
		{"ru", VOCALIC_R_SIGN},   // ෘ
	}
}

// SinhalaScheme builds a fresh copy of the built-in scheme. Copies
// are independent, so deriving a custom scheme by editing one won't
// affect engines built earlier.
func SinhalaScheme() *Scheme {
	return &Scheme{
		Details: SchemeDetails{
			Identifier:  "si-singlish",
			LangCode:    "si",
			DisplayName: "Singlish",
			Author:      "Singlish Project",
			IsStable:    true,
		},
		SpecialConsonants: sinhalaSpecialConsonants(),
		Consonants:        sinhalaConsonants(),
		Vowels:            sinhalaVowels(),
		DiacriticSuffixes: sinhalaDiacriticSuffixes(),
	}
}
