package singlish

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SinhalaBlock spans the Sinhala Unicode block
var SinhalaBlock = unicode.RangeTable{R16: []unicode.Range16{{0x0D80, 0x0DFF, 1}}}

// IsSinhala reports whether r belongs to the Sinhala block. The ZWJ
// inside conjuncts is not part of the block; callers scanning output
// should treat it as script-neutral.
func IsSinhala(r rune) bool {
	return unicode.In(r, &SinhalaBlock)
}

// LatinResidue returns the runs of Latin letters and escape markers a
// conversion left untouched. An empty result means the scheme covered
// the whole input; anything else is what the typist has to fix, or a
// gap in the scheme.
func LatinResidue(converted string) []string {
	var (
		residue []string
		run     strings.Builder
	)

	flush := func() {
		if run.Len() > 0 {
			residue = append(residue, run.String())
			run.Reset()
		}
	}

	for _, r := range converted {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '\\' {
			run.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return residue
}

// NFC returns the canonical composition of s. Engine output is
// already composed since the tables carry precomposed signs; this is
// for text arriving from elsewhere before comparing it against
// engine output.
func NFC(s string) string {
	return norm.NFC.String(s)
}
