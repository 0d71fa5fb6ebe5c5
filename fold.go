package axstr

import (
	"unicode"
	"unicode/utf8"
)

// foldEq reports whether two runes are equal under simple Unicode folding.
func foldEq(sr, tr rune) bool {
	if sr == tr {
		return true
	}
	if tr < sr {
		tr, sr = sr, tr
	}
	// Fast check for ASCII.
	if tr < utf8.RuneSelf {
		return 'A' <= sr && sr <= 'Z' && tr == sr+'a'-'A'
	}
	r := unicode.SimpleFold(sr)
	for r != sr && r < tr {
		r = unicode.SimpleFold(r)
	}
	return r == tr
}

// hasPrefixFold returns whether s begins with prefix under simple case
// folding, and whether s was exhausted before a mismatch was found.
func hasPrefixFold(s, prefix View) (bool, bool) {
	// A folded form can be up to three times the encoded length of its
	// counterpart ('k' is one byte, K U+212A is three).
	if len(s)*3 < len(prefix) {
		return false, true
	}

	// ASCII fast path.
	i := 0
	for ; i < len(s) && i < len(prefix); i++ {
		sr := s[i]
		tr := prefix[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if sr == tr || _lower[sr] == _lower[tr] {
			continue
		}
		return false, i == len(s)-1
	}
	return i == len(prefix), i == len(s)

hasUnicode:
	s = s[i:]
	prefix = prefix[i:]
	for _, tr := range string(prefix) {
		// If s is exhausted the strings are not equal.
		if len(s) == 0 {
			return false, true
		}

		var sr rune
		if s[0] < utf8.RuneSelf {
			sr, s = rune(s[0]), s[1:]
		} else {
			r, size := utf8.DecodeRuneInString(string(s))
			sr, s = r, s[size:]
		}

		if foldEq(sr, tr) {
			continue
		}
		return false, len(s) == 0
	}
	return true, len(s) == 0 // Prefix exhausted
}

// caseFindFold returns the first occurrence of substr in s under simple
// case folding. len(substr) must be at least 1.
func caseFindFold(s, substr View) int {
	c0, _ := utf8.DecodeRuneInString(string(substr))
	c0 = unicode.ToLower(c0)

	for i := 0; i < len(s); {
		var r0 rune
		var n0 int
		if s[i] < utf8.RuneSelf {
			r0, n0 = rune(s[i]), 1
		} else {
			r0, n0 = utf8.DecodeRuneInString(string(s[i:]))
		}
		if foldEq(r0, c0) {
			match, exhausted := hasPrefixFold(s[i:], substr)
			if match {
				return i
			}
			if exhausted {
				return -1
			}
		}
		i += n0
	}
	return -1
}

// caseFindLastFold returns the last occurrence of substr in s under simple
// case folding. len(substr) must be at least 1.
func caseFindLastFold(s, substr View) int {
	last := -1
	for i := 0; i < len(s); {
		if ok, _ := hasPrefixFold(s[i:], substr); ok {
			last = i
		}
		if s[i] < utf8.RuneSelf {
			i++
		} else {
			_, n := utf8.DecodeRuneInString(string(s[i:]))
			i += n
		}
	}
	return last
}

// caseFind is the case-insensitive counterpart of [View.Find].
func caseFind(s, substr View) int {
	switch {
	case len(substr) == 0:
		return 0
	case len(substr) > len(s)*3:
		return -1
	case isASCII(substr) && isASCII(s):
		// Folds like 'K' (Kelvin) to 'k' only matter when s has runes
		// outside ASCII, so the byte-wise path is safe here.
		return caseFindASCII(s, substr)
	default:
		return caseFindFold(s, substr)
	}
}

// caseFindLast is the case-insensitive counterpart of [View.FindLast].
func caseFindLast(s, substr View) int {
	switch {
	case len(substr) == 0:
		return len(s)
	case len(substr) > len(s)*3:
		return -1
	case isASCII(substr) && isASCII(s):
		return caseFindLastASCII(s, substr)
	default:
		return caseFindLastFold(s, substr)
	}
}
