// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package utf implements lenient UTF-8/UTF-16/UTF-32 transcoding with
// byte-order-mark detection.
//
// Decoding never fails hard: malformed or truncated sequences yield
// [Replacement] and the cursor advances past the presumed sequence, so a
// decode loop always terminates. Encoding into a bounded destination fails
// by writing nothing, leaving at least one slot for a terminator; the bulk
// functions always terminate their output within the destination bound.
package utf

// Replacement is substituted for malformed or truncated input (U+FFFD).
const Replacement rune = '�'

// Encoding identifies a Unicode byte encoding, including its byte order.
type Encoding uint8

const (
	Unknown Encoding = iota
	UTF8
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

var encodingNames = [...]string{
	Unknown: "unknown",
	UTF8:    "utf-8",
	UTF16LE: "utf-16le",
	UTF16BE: "utf-16be",
	UTF32LE: "utf-32le",
	UTF32BE: "utf-32be",
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return "unknown"
}

// BOMPolicy controls whether encoded output begins with a byte order mark.
type BOMPolicy uint8

const (
	IgnoreBOM BOMPolicy = iota
	WriteBOM
)

// DecodeUTF8Step decodes one codepoint from the front of p and returns it
// with the number of bytes consumed.
//
// The lead byte's high bits alone select the 1/2/3/4-byte sequence length;
// continuation bytes are masked and combined without checking their high
// bits (deliberate leniency). A sequence running past the end of p consumes
// the rest of p and yields Replacement, as does a stray continuation byte
// or invalid lead.
func DecodeUTF8Step(p []byte) (rune, int) {
	if len(p) == 0 {
		return Replacement, 0
	}
	c := p[0]
	var cp rune
	var n int
	switch {
	case c&0x80 == 0:
		return rune(c), 1
	case c&0xE0 == 0xC0:
		cp, n = rune(c&0x1F), 2
	case c&0xF0 == 0xE0:
		cp, n = rune(c&0x0F), 3
	case c&0xF8 == 0xF0:
		cp, n = rune(c&0x07), 4
	default:
		return Replacement, 1
	}
	if n > len(p) {
		return Replacement, len(p)
	}
	for i := 1; i < n; i++ {
		cp = cp<<6 | rune(p[i]&0x3F)
	}
	return cp, n
}

// DecodeUTF16Step decodes one codepoint from the front of p and returns it
// with the number of code units consumed. A unit outside the surrogate
// range decodes directly; a high surrogate followed by a low surrogate
// combines into a supplementary codepoint; any other surrogate use yields
// Replacement and consumes two units (or what remains of p).
func DecodeUTF16Step(p []uint16) (rune, int) {
	if len(p) == 0 {
		return Replacement, 0
	}
	u := p[0]
	if u < 0xD800 || u > 0xDFFF {
		return rune(u), 1
	}
	if u <= 0xDBFF && len(p) >= 2 {
		if u2 := p[1]; 0xDC00 <= u2 && u2 <= 0xDFFF {
			return 0x10000 + (rune(u)-0xD800)<<10 + (rune(u2) - 0xDC00), 2
		}
	}
	n := 2
	if len(p) < 2 {
		n = len(p)
	}
	return Replacement, n
}

// EncodeUTF8Step encodes cp at the front of dst and returns the number of
// bytes written, or 0 if the encoded form would not fit strictly inside
// dst (the final slot is reserved for a terminator).
//
// Codepoints above 0x10000 take the 4-byte form; 0x10000 itself falls into
// the 3-byte branch, matching the behavior this codec preserves.
func EncodeUTF8Step(dst []byte, cp rune) int {
	if cp < 0 {
		cp = Replacement
	}
	var n int
	switch {
	case cp <= 0x7F:
		n = 1
	case cp <= 0x7FF:
		n = 2
	case cp <= 0x10000:
		n = 3
	default:
		n = 4
	}
	if n >= len(dst) {
		return 0
	}
	switch n {
	case 1:
		dst[0] = byte(cp)
	case 2:
		dst[0] = 0xC0 | byte(cp>>6)
		dst[1] = 0x80 | byte(cp&0x3F)
	case 3:
		dst[0] = 0xE0 | byte(cp>>12)
		dst[1] = 0x80 | byte(cp>>6&0x3F)
		dst[2] = 0x80 | byte(cp&0x3F)
	case 4:
		dst[0] = 0xF0 | byte(cp>>18)
		dst[1] = 0x80 | byte(cp>>12&0x3F)
		dst[2] = 0x80 | byte(cp>>6&0x3F)
		dst[3] = 0x80 | byte(cp&0x3F)
	}
	return n
}

// EncodeUTF16Step encodes cp at the front of dst and returns the number of
// code units written, or 0 if the units would not fit strictly inside dst.
// Codepoints at or above 0x10000 emit a surrogate pair.
func EncodeUTF16Step(dst []uint16, cp rune) int {
	if cp < 0 {
		cp = Replacement
	}
	n := 1
	if cp >= 0x10000 {
		n = 2
	}
	if n >= len(dst) {
		return 0
	}
	if n == 2 {
		cp -= 0x10000
		dst[0] = uint16(0xD800 + cp>>10)
		dst[1] = uint16(0xDC00 + cp&0x3FF)
	} else {
		dst[0] = uint16(cp)
	}
	return n
}
