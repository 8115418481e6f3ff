// Package normalize canonicalizes roster text so that values typed by
// different people compare equal. A normalized value is upper-cased, stripped
// of accents and punctuation, and has its whitespace collapsed:
//
//	normalize.Text("  José  Pérez-Gómez ")   // "JOSE PEREZ GOMEZ"
//	normalize.IsScrambled("Pérez José", "jose perez") // true
//
// Every function in this package is pure and safe for concurrent use.
package normalize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/rostercheck/pkg/constants"
)

// combiningMarks is the Combining Diacritical Marks block.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Text returns the normalized key of v. Strings are used as-is, numbers are
// rendered in their shortest decimal form and bools as TRUE or FALSE. A nil
// value yields "".
func Text(v any) string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return ""
	}

	// Transformers keep internal state, so a chain is built per call.
	upper := cases.Upper(language.Und)
	chain := transform.Chain(upper, norm.NFD, runes.Remove(runes.In(combiningMarks)))
	decomposed, _, err := transform.String(chain, s)
	if err != nil {
		decomposed = strings.ToUpper(s)
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	space := false
	for _, r := range decomposed {
		if !isWordRune(r) {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Key joins already-normalized parts into a composite comparison key.
func Key(parts ...string) string {
	return strings.Join(parts, constants.KeySeparator)
}

// Words returns the tokens of the normalized name that are at least
// constants.MinWordLength characters long, in their original order.
func Words(name string) []string {
	fields := strings.Fields(Text(name))
	words := fields[:0]
	for _, f := range fields {
		if len(f) >= constants.MinWordLength {
			words = append(words, f)
		}
	}
	return words
}

// WordKey returns the sorted words of name joined by a single space, or ""
// when name has no qualifying words. Two names are scrambled-equal iff their
// word keys are equal and non-empty.
func WordKey(name string) string {
	words := Words(name)
	if len(words) == 0 {
		return ""
	}
	sort.Strings(words)
	return strings.Join(words, " ")
}

// IsScrambled reports whether a and b contain the same multiset of words,
// ignoring order. Names without qualifying words never match.
func IsScrambled(a, b string) bool {
	wa, wb := Words(a), Words(b)
	if len(wa) == 0 || len(wb) == 0 || len(wa) != len(wb) {
		return false
	}
	sort.Strings(wa)
	sort.Strings(wb)
	for i := range wa {
		if wa[i] != wb[i] {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z')
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return formatFloat(float64(t), 32)
	case float64:
		return formatFloat(t, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func formatFloat(f float64, bits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
