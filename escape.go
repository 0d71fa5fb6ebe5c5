package axstr

import "github.com/axia-sw/axstr/utf"

// escapeTable maps a byte to its escape letter, or 0 for none. The quote
// characters and backslash map to themselves.
var escapeTable = [256]byte{
	0:    '0',
	'\a': 'a',
	'\b': 'b',
	0x1B: 'e',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// Escape returns v with the C-like escape set applied: backslash, both
// quote characters, and the control characters of the table become
// two-byte "\X" sequences. Bytes outside the table pass through
// untouched. "?" is accepted by Unescape but never produced here.
func (v View) Escape() string {
	n := len(v)
	for i := 0; i < len(v); i++ {
		if escapeTable[v[i]] != 0 {
			n++
		}
	}
	if n == len(v) {
		return string(v)
	}
	out := make([]byte, 0, n)
	for i := 0; i < len(v); i++ {
		c := v[i]
		if e := escapeTable[c]; e != 0 {
			out = append(out, '\\', e)
		} else {
			out = append(out, c)
		}
	}
	return string(out)
}

// unescapeHex reads up to max hex digits from the front of s, clamped to
// the available input, and returns the value, the rest of s, and the
// number of digits read.
func unescapeHex(s View, max int) (rune, View, int) {
	var cp rune
	n := 0
	for n < max && len(s) > 0 {
		d := digitVal(s[0])
		if d < 0 || d >= 16 {
			break
		}
		cp = cp<<4 | rune(d)
		s = s[1:]
		n++
	}
	return cp, s, n
}

// Unescape reverses Escape, decoding the fixed table (\\ ' " ? a b e f n
// r t v and \0) plus the numeric forms \xHH (up to two hex digits),
// \uHHHH (four) and \UHHHHHHHH (eight), each clamped to the available
// input. Decoded codepoints are re-encoded as UTF-8. A backslash before
// an unknown byte yields that byte; a trailing backslash is dropped.
func (v View) Unescape() string {
	out := make([]byte, 0, len(v))
	s := v
	for len(s) > 0 {
		c := s[0]
		if c != '\\' {
			out = append(out, c)
			s = s[1:]
			continue
		}
		s = s[1:]
		if len(s) == 0 {
			break
		}
		e := s[0]
		s = s[1:]
		switch e {
		case '\\', '\'', '"', '?':
			out = append(out, e)
		case '0':
			out = append(out, 0)
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case 'e':
			out = append(out, 0x1B)
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'v':
			out = append(out, '\v')
		case 'x', 'u', 'U':
			max := 2
			switch e {
			case 'u':
				max = 4
			case 'U':
				max = 8
			}
			cp, rest, n := unescapeHex(s, max)
			if n == 0 {
				out = append(out, e)
				break
			}
			s = rest
			var enc [8]byte
			if w := utf.EncodeUTF8Step(enc[:], cp); w > 0 {
				out = append(out, enc[:w]...)
			}
		default:
			out = append(out, e)
		}
	}
	return string(out)
}
