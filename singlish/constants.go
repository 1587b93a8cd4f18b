package singlish

/* General */
const ZWJ = "\u200d"

/* Sinhala characters with a structural role in the rewrite passes */
const VIRAMA = "්"          // ්  al-lakuna, suppresses the inherent vowel
const ANUSVARA = "ං"        // ං
const VISARGA = "ඃ"         // ඃ
const VELAR_NASAL = "ඞ"     // ඞ
const VOCALIC_R = "ඍ"       // ඍ
const VOCALIC_R_SIGN = "ෘ"  // ෘ  gaetta-pilla
const VOCALIC_RR_SIGN = "ෲ" // ෲ  diga gaetta-pilla
const RAYANNA = "ර"         // ර

// RAKARANSHA is the conjoined ra that renders below the preceding
// consonant. The ZWJ is load-bearing: without it the sequence falls
// apart into a visible virama + ra.
const RAKARANSHA = VIRAMA + ZWJ + RAYANNA

/* Rule classes of a scheme.
Vowel and consonant values match the varnam symbol table numbering so
exported symbol stores open in varnam tooling. */
const SINGLISH_SYMBOL_VOWEL = 1
const SINGLISH_SYMBOL_CONSONANT = 2
const SINGLISH_SYMBOL_SPECIAL_CONSONANT = 3
const SINGLISH_SYMBOL_DIACRITIC_SUFFIX = 4

/* Pattern matching, varnam numbering */
const SINGLISH_MATCH_EXACT = 1

/* Rewrite passes in application order */
const PASS_SPECIAL_CONSONANTS = 1
const PASS_DIACRITIC_SUFFIXES = 2
const PASS_RAKARANSHA = 3
const PASS_CONSONANT_VOWELS = 4
const PASS_BARE_CONSONANTS = 5
const PASS_VOWELS = 6

/* Metadata keys of a symbol store, same strings varnam uses */
const SINGLISH_METADATA_SCHEME_IDENTIFIER = "scheme-id"
const SINGLISH_METADATA_SCHEME_LANGUAGE_CODE = "lang-code"
const SINGLISH_METADATA_SCHEME_DISPLAY_NAME = "scheme-display-name"
const SINGLISH_METADATA_SCHEME_AUTHOR = "scheme-author"
const SINGLISH_METADATA_SCHEME_COMPILED_DATE = "scheme-compiled-date"
const SINGLISH_METADATA_SCHEME_STABLE = "scheme-stable"

/* Symbol store schema version, stamped into PRAGMA user_version */
const SINGLISH_SCHEMA_SYMBOLS_VERSION = 20220410

/* A stored symbol field's maximum byte length */
const SINGLISH_SYMBOL_MAX = 30
