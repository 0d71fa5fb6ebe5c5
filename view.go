// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

package axstr

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/axia-sw/axstr/internal/bytealg"
)

// A View is an immutable, non-owning reference to a run of bytes: a
// pointer and a byte length, exactly the shape of a Go string. A View
// sliced from a [String] is valid only until that String is next mutated
// or purged; Views of literals are always valid. The referenced bytes are
// not NUL-terminated.
type View string

// Len returns the length of v in bytes.
func (v View) Len() int { return len(v) }

// IsEmpty reports whether v has zero length.
func (v View) IsEmpty() bool { return len(v) == 0 }

// viewBytes returns the bytes referenced by v without copying. The result
// must not be written to and is valid only as long as v is.
func viewBytes(v View) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(string(v)), len(v))
}

// Find returns the byte index of the first occurrence of sub in v, or -1.
func (v View) Find(sub View) int {
	return strings.Index(string(v), string(sub))
}

// FindFrom is Find resuming at or after byte index start. The returned
// index is relative to the start of v.
func (v View) FindFrom(sub View, start int) int {
	if start < 0 {
		start = 0
	}
	if start > len(v) {
		return -1
	}
	n := strings.Index(string(v[start:]), string(sub))
	if n < 0 {
		return -1
	}
	return n + start
}

// CaseFind returns the byte index of the first occurrence of sub in v
// under simple Unicode case folding, or -1.
func (v View) CaseFind(sub View) int {
	return caseFind(v, sub)
}

// CaseFindFrom is CaseFind resuming at or after byte index start.
func (v View) CaseFindFrom(sub View, start int) int {
	if start < 0 {
		start = 0
	}
	if start > len(v) {
		return -1
	}
	n := caseFind(v[start:], sub)
	if n < 0 {
		return -1
	}
	return n + start
}

// FindLast returns the byte index of the last occurrence of sub in v,
// or -1.
func (v View) FindLast(sub View) int {
	return strings.LastIndex(string(v), string(sub))
}

// CaseFindLast returns the byte index of the last occurrence of sub in v
// under simple Unicode case folding, or -1.
func (v View) CaseFindLast(sub View) int {
	return caseFindLast(v, sub)
}

// CaseCount counts non-overlapping occurrences of sub in v under simple
// case folding. As with [strings.Count], an empty sub counts one more
// than the number of runes in v.
func (v View) CaseCount(sub View) int {
	if len(sub) == 0 {
		return utf8.RuneCountInString(string(v)) + 1
	}
	if len(sub) == 1 && sub[0] < utf8.RuneSelf && isASCII(v) {
		return bytealg.Count(string(v), sub[0])
	}
	n := 0
	for {
		i := caseFind(v, sub)
		if i < 0 {
			return n
		}
		n++
		v = v[i+len(sub):]
	}
}

// FindAny returns the byte index of the first rune of v contained in the
// set, or -1.
func (v View) FindAny(set View) int {
	return strings.IndexAny(string(v), string(set))
}

// FindAnyFrom is FindAny resuming at or after byte index start.
func (v View) FindAnyFrom(set View, start int) int {
	if start < 0 {
		start = 0
	}
	if start > len(v) {
		return -1
	}
	n := strings.IndexAny(string(v[start:]), string(set))
	if n < 0 {
		return -1
	}
	return n + start
}

// CaseEqual reports whether v and o are equal under simple case folding.
func (v View) CaseEqual(o View) bool {
	if isASCII(v) && isASCII(o) {
		return equalASCII(v, o)
	}
	ok, exhausted := hasPrefixFold(v, o)
	return ok && exhausted
}

// Contains reports whether sub is within v.
func (v View) Contains(sub View) bool { return v.Find(sub) >= 0 }

// CaseContains reports whether sub is within v under simple case folding.
func (v View) CaseContains(sub View) bool { return v.CaseFind(sub) >= 0 }

// resolve turns a possibly negative (from-the-end) index into a clamped
// offset in [0, n].
func resolve(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Left returns the first n bytes of v. Negative n counts from the end
// (all but the last -n bytes). The result is clamped, never an error.
func (v View) Left(n int) View {
	return v[:resolve(n, len(v))]
}

// Right returns the last n bytes of v. Negative n counts from the start
// (all but the first -n bytes).
func (v View) Right(n int) View {
	return v[len(v)-resolve(n, len(v)):]
}

// Mid returns count bytes of v starting at pos. A negative pos counts
// from the end; the range is clamped into bounds.
func (v View) Mid(pos, count int) View {
	p := resolve(pos, len(v))
	if count < 0 {
		count = 0
	}
	if count > len(v)-p {
		count = len(v) - p
	}
	return v[p : p+count]
}

// Substr returns v[start:end] with Python-like semantics: negative
// indices count from the end and the range is clamped into bounds. An
// end before start yields an empty View.
func (v View) Substr(start, end int) View {
	s := resolve(start, len(v))
	e := resolve(end, len(v))
	if e < s {
		e = s
	}
	return v[s:e]
}

// isSpace reports whether c counts as whitespace: any byte <= 0x20.
// This is deliberately ASCII-only.
func isSpace(c byte) bool { return c <= 0x20 }

// TrimLeft returns v with leading whitespace removed.
func (v View) TrimLeft() View {
	i := 0
	for i < len(v) && isSpace(v[i]) {
		i++
	}
	return v[i:]
}

// TrimRight returns v with trailing whitespace removed.
func (v View) TrimRight() View {
	n := len(v)
	for n > 0 && isSpace(v[n-1]) {
		n--
	}
	return v[:n]
}

// Trim returns v with leading and trailing whitespace removed.
func (v View) Trim() View {
	return v.TrimLeft().TrimRight()
}

// HasPrefix reports whether v begins with prefix.
func (v View) HasPrefix(prefix View) bool {
	return strings.HasPrefix(string(v), string(prefix))
}

// HasSuffix reports whether v ends with suffix.
func (v View) HasSuffix(suffix View) bool {
	return strings.HasSuffix(string(v), string(suffix))
}
