package singlish

import (
	"path"
	"reflect"
	"strings"
	"testing"
)

func TestSymbolStoreRoundTrip(t *testing.T) {
	storePath := path.Join(testTempDir, "sinhala.vst")

	scheme := SinhalaScheme()
	checkError(ExportSymbolStore(storePath, scheme))

	loaded, err := LoadSymbolStore(storePath)
	checkError(err)

	assertEqual(t, loaded.Details.Identifier, scheme.Details.Identifier)
	assertEqual(t, loaded.Details.LangCode, scheme.Details.LangCode)
	assertEqual(t, loaded.Details.DisplayName, scheme.Details.DisplayName)
	assertEqual(t, loaded.Details.IsStable, true)
	// The exporter stamps a compile date on the way out
	assertEqual(t, loaded.Details.CompiledDate != "", true)

	assertEqual(t, reflect.DeepEqual(loaded.SpecialConsonants, scheme.SpecialConsonants), true)
	assertEqual(t, reflect.DeepEqual(loaded.Consonants, scheme.Consonants), true)
	assertEqual(t, reflect.DeepEqual(loaded.Vowels, scheme.Vowels), true)
	assertEqual(t, reflect.DeepEqual(loaded.DiacriticSuffixes, scheme.DiacriticSuffixes), true)

	engine, err := NewFromScheme(loaded)
	checkError(err)
	assertEqual(t, engine.Convert("kramaya"), "ක්‍රමය")
	assertEqual(t, engine.Convert("kru"), "කෘ")
}

func TestSymbolStoreVersionCheck(t *testing.T) {
	storePath := path.Join(testTempDir, "unstamped.vst")

	// A store that was never stamped reads back as version 0
	store, err := OpenSymbolStore(storePath)
	checkError(err)
	store.Close()

	_, err = LoadSymbolStore(storePath)
	assertEqual(t, err != nil, true)
	assertEqual(t, strings.Contains(err.Error(), "schema version"), true)
}

func TestSymbolStoreDuplicateRejected(t *testing.T) {
	storePath := path.Join(testTempDir, "duplicate.vst")

	// Identical duplicate rows pass validation but the store keys
	// symbols by pattern and class, so export refuses them
	scheme := testScheme(
		[]ConsonantRule{{"q", "ක"}, {"q", "ක"}},
		[]VowelRule{{"a", "අ", ""}},
	)
	checkError(scheme.Validate())

	err := ExportSymbolStore(storePath, scheme)
	assertEqual(t, err != nil, true)
	assertEqual(t, strings.Contains(err.Error(), "Duplicate entries are not allowed"), true)
}

func TestSymbolStoreMissingFile(t *testing.T) {
	_, err := LoadSymbolStore(path.Join(testTempDir, "no-such-store.vst"))
	assertEqual(t, err != nil, true)
}

func TestExportRejectsInvalidScheme(t *testing.T) {
	storePath := path.Join(testTempDir, "invalid.vst")

	scheme := testScheme(
		[]ConsonantRule{{"k", "ක"}, {"k", "ග"}},
		[]VowelRule{{"a", "අ", ""}},
	)

	err := ExportSymbolStore(storePath, scheme)
	assertEqual(t, err != nil, true)
	assertEqual(t, fileExists(storePath), false)
}
