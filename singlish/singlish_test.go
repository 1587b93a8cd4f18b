package singlish

import (
	"bytes"
	"log"
	"os"
	"path"
	"reflect"
	"runtime/debug"
	"testing"

	"github.com/rs/zerolog"
)

var testEngine *Engine
var testTempDir string

// AssertEqual checks if values are equal
// Thanks https://gist.github.com/samalba/6059502#gistcomment-2710184
func assertEqual(t *testing.T, value interface{}, expected interface{}) {
	if value == expected {
		return
	}
	debug.PrintStack()
	t.Errorf("Received %v (type %v), expected %v (type %v)", value, reflect.TypeOf(value), expected, reflect.TypeOf(expected))
}

func checkError(err error) {
	if err != nil {
		log.Panic(err)
	}
}

func makeFile(name string, contents string) string {
	filePath := path.Join(testTempDir, name)

	file, err := os.Create(filePath)
	if err != nil {
		log.Println(err)
		return ""
	}
	defer file.Close()

	file.WriteString(contents)

	return filePath
}

func TestMain(m *testing.M) {
	var err error

	testTempDir, err = os.MkdirTemp("", "singlish_test")
	checkError(err)

	testEngine, err = New()
	checkError(err)

	m.Run()

	os.RemoveAll(testTempDir)
}

func TestConvertBasic(t *testing.T) {
	assertEqual(t, testEngine.Convert(""), "")
	assertEqual(t, testEngine.Convert("atha"), "අත")
	assertEqual(t, testEngine.Convert("ammaa"), "අම්මා")
	assertEqual(t, testEngine.Convert("mama"), "මම")
	assertEqual(t, testEngine.Convert("oyaa"), "ඔයා")
	assertEqual(t, testEngine.Convert("k"), "ක්")
}

func TestConvertPackageLevel(t *testing.T) {
	assertEqual(t, Convert("ammaa"), testEngine.Convert("ammaa"))
	assertEqual(t, Convert(""), "")
}

func TestMaximalMunch(t *testing.T) {
	// A bare "th" is the dental ත්, never ට with a stray h
	assertEqual(t, testEngine.Convert("th"), "ත්")
	assertEqual(t, testEngine.Convert("tha"), "ත")
	assertEqual(t, testEngine.Convert("ta"), "ට")
	assertEqual(t, testEngine.Convert("nndha"), "ඳ")
	assertEqual(t, testEngine.Convert("nnda"), "ඬ")
	assertEqual(t, testEngine.Convert("na"), "න")
}

func TestVowelAliases(t *testing.T) {
	assertEqual(t, testEngine.Convert("too"), "ටූ")
	assertEqual(t, testEngine.Convert("tu)"), "ටූ")
	assertEqual(t, testEngine.Convert("poojaa"), testEngine.Convert("puujaa"))
	assertEqual(t, testEngine.Convert("poojaa"), "පූජා")
	assertEqual(t, testEngine.Convert("kI"), "කී")
	assertEqual(t, testEngine.Convert("kii"), "කී")
	assertEqual(t, testEngine.Convert("kAA"), "කෑ")
	assertEqual(t, testEngine.Convert("kAa"), "කෑ")
	assertEqual(t, testEngine.Convert("kA)"), "කෑ")
}

func TestConsonantAliases(t *testing.T) {
	assertEqual(t, testEngine.Convert("wathura"), "වතුර")
	assertEqual(t, testEngine.Convert("vathura"), testEngine.Convert("wathura"))
	assertEqual(t, testEngine.Convert("kha"), "ඛ")
	assertEqual(t, testEngine.Convert("Ka"), testEngine.Convert("kha"))
}

func TestRakaransha(t *testing.T) {
	assertEqual(t, testEngine.Convert("kra"), "ක්‍ර")
	assertEqual(t, testEngine.Convert("kr"), "ක්‍ර")
	assertEqual(t, testEngine.Convert("kaR"), testEngine.Convert("kra"))
	assertEqual(t, testEngine.Convert(`ka\r`), testEngine.Convert("kra"))
	assertEqual(t, testEngine.Convert("krii"), "ක්‍රී")
	assertEqual(t, testEngine.Convert("krea"), "ක්‍රේ")
	assertEqual(t, testEngine.Convert("shrii"), "ශ්‍රී")
	assertEqual(t, testEngine.Convert("kramaya"), "ක්‍රමය")
}

func TestDiacriticSuffixes(t *testing.T) {
	// The vocalic-r suffix wins over the rakaransha reading
	assertEqual(t, testEngine.Convert("kru"), "කෘ")
	assertEqual(t, testEngine.Convert("kruu"), "කෲ")
	assertEqual(t, testEngine.Convert("kroo"), "ක්‍රූ")
	assertEqual(t, testEngine.Convert("kruthiya"), "කෘතිය")
}

func TestSpecialConsonants(t *testing.T) {
	assertEqual(t, testEngine.Convert(`si\nhala`), "සිංහල")
	assertEqual(t, testEngine.Convert(`la\nkaawa`), "ලංකාව")
	assertEqual(t, testEngine.Convert(`a\h`), "අඃ")
	assertEqual(t, testEngine.Convert(`\N`), VELAR_NASAL)
	assertEqual(t, testEngine.Convert(`\R`), VOCALIC_R)
	assertEqual(t, testEngine.Convert(`\RShi`), "ඍෂි")
}

func TestPassthrough(t *testing.T) {
	assertEqual(t, testEngine.Convert("k9!"), "ක්9!")
	assertEqual(t, testEngine.Convert("1959"), "1959")
	assertEqual(t, testEngine.Convert("?!"), "?!")
}

func TestWords(t *testing.T) {
	assertEqual(t, testEngine.Convert("aayubo)wan"), "ආයුබෝවන්")
	assertEqual(t, testEngine.Convert("Dharmaya"), "ධර්මය")
	assertEqual(t, testEngine.Convert("laxmi"), "ලක්ෂ්මි")
}

func TestRewriteOrderIsRuleMajor(t *testing.T) {
	// The "uu" rule runs over the whole string before "au" is ever
	// tried, so the trailing long vowel wins over the diphthong at
	// the start. A position-major scanner would give ඖඋ here.
	assertEqual(t, testEngine.Convert("auu"), "අඌ")
}

func TestIdempotence(t *testing.T) {
	for _, input := range []string{"ammaa", "kramaya", `si\nhala`, "k9!", ""} {
		once := testEngine.Convert(input)
		assertEqual(t, testEngine.Convert(once), once)
	}
}

func TestDeterminism(t *testing.T) {
	first := testEngine.Convert("aayubo)wan")
	for i := 0; i < 3; i++ {
		assertEqual(t, testEngine.Convert("aayubo)wan"), first)
	}

	other, err := New()
	checkError(err)
	assertEqual(t, other.Convert("aayubo)wan"), first)
}

func TestDebugTrace(t *testing.T) {
	var buf bytes.Buffer

	engine, err := New()
	checkError(err)

	engine.Debug = true
	engine.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	assertEqual(t, engine.Convert("ammaa"), "අම්මා")
	assertEqual(t, buf.Len() > 0, true)
}
