// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

package utf

import (
	"encoding/binary"

	"github.com/axia-sw/axstr/internal/bytestream"
)

// utf8ToUTF16 is the shared bulk loop: returns units written and whether
// all of src was converted. dst is always terminated when it has room.
func utf8ToUTF16(dst []uint16, src []byte) (int, bool) {
	if len(dst) == 0 {
		return 0, false
	}
	n := 0
	ok := true
	for len(src) > 0 {
		cp, sz := DecodeUTF8Step(src)
		src = src[sz:]
		w := EncodeUTF16Step(dst[n:], cp)
		if w == 0 {
			ok = false
			break
		}
		n += w
	}
	dst[n] = 0
	return n, ok
}

// UTF8ToUTF16 transcodes src into dst and returns the number of UTF-16
// units written, excluding the terminating zero unit that is always
// written within the bound. Output may be partial if dst is too small.
func UTF8ToUTF16(dst []uint16, src []byte) int {
	n, _ := utf8ToUTF16(dst, src)
	return n
}

// UTF8ToUTF16All reports whether dst held all of src. Partial output may
// already be in dst when it returns false.
func UTF8ToUTF16All(dst []uint16, src []byte) bool {
	_, ok := utf8ToUTF16(dst, src)
	return ok
}

func utf16ToUTF8(dst []byte, src []uint16) (int, bool) {
	if len(dst) == 0 {
		return 0, false
	}
	n := 0
	ok := true
	for len(src) > 0 {
		cp, sz := DecodeUTF16Step(src)
		src = src[sz:]
		w := EncodeUTF8Step(dst[n:], cp)
		if w == 0 {
			ok = false
			break
		}
		n += w
	}
	dst[n] = 0
	return n, ok
}

// UTF16ToUTF8 transcodes src into dst and returns the number of bytes
// written, excluding the always-written terminator.
func UTF16ToUTF8(dst []byte, src []uint16) int {
	n, _ := utf16ToUTF8(dst, src)
	return n
}

// UTF16ToUTF8All reports whether dst held all of src.
func UTF16ToUTF8All(dst []byte, src []uint16) bool {
	_, ok := utf16ToUTF8(dst, src)
	return ok
}

func utf8ToUTF32(dst []rune, src []byte) (int, bool) {
	if len(dst) == 0 {
		return 0, false
	}
	n := 0
	ok := true
	for len(src) > 0 {
		cp, sz := DecodeUTF8Step(src)
		src = src[sz:]
		if n+1 >= len(dst) {
			ok = false
			break
		}
		dst[n] = cp
		n++
	}
	dst[n] = 0
	return n, ok
}

// UTF8ToUTF32 transcodes src into dst and returns the number of UTF-32
// units written, excluding the always-written terminator.
func UTF8ToUTF32(dst []rune, src []byte) int {
	n, _ := utf8ToUTF32(dst, src)
	return n
}

// UTF8ToUTF32All reports whether dst held all of src.
func UTF8ToUTF32All(dst []rune, src []byte) bool {
	_, ok := utf8ToUTF32(dst, src)
	return ok
}

func utf32ToUTF8(dst []byte, src []rune) (int, bool) {
	if len(dst) == 0 {
		return 0, false
	}
	n := 0
	ok := true
	for len(src) > 0 {
		cp := src[0]
		src = src[1:]
		w := EncodeUTF8Step(dst[n:], cp)
		if w == 0 {
			ok = false
			break
		}
		n += w
	}
	dst[n] = 0
	return n, ok
}

// UTF32ToUTF8 transcodes src into dst and returns the number of bytes
// written, excluding the always-written terminator.
func UTF32ToUTF8(dst []byte, src []rune) int {
	n, _ := utf32ToUTF8(dst, src)
	return n
}

// UTF32ToUTF8All reports whether dst held all of src.
func UTF32ToUTF8All(dst []byte, src []rune) bool {
	_, ok := utf32ToUTF8(dst, src)
	return ok
}

// DetectEncoding sniffs a byte order mark at the front of b and returns
// the encoding it identifies along with the mark's length in bytes.
//
// Marks are matched longest-prefix first to avoid ambiguity: UTF-32BE
// (00 00 FE FF), UTF-8 (EF BB BF), UTF-16BE (FE FF), then FF FE, which is
// UTF-32LE when followed by 00 00 and UTF-16LE otherwise. No match yields
// (Unknown, 0).
func DetectEncoding(b []byte) (Encoding, int) {
	if len(b) >= 4 && b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF {
		return UTF32BE, 4
	}
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return UTF8, 3
	}
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		return UTF16BE, 2
	}
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE {
		if len(b) >= 4 && b[2] == 0x00 && b[3] == 0x00 {
			return UTF32LE, 4
		}
		return UTF16LE, 2
	}
	return Unknown, 0
}

// BOM returns the byte order mark for e. Unknown is treated as UTF-8.
func (e Encoding) BOM() []byte {
	switch e {
	case UTF16LE:
		return []byte{0xFF, 0xFE}
	case UTF16BE:
		return []byte{0xFE, 0xFF}
	case UTF32LE:
		return []byte{0xFF, 0xFE, 0x00, 0x00}
	case UTF32BE:
		return []byte{0x00, 0x00, 0xFE, 0xFF}
	default:
		return []byte{0xEF, 0xBB, 0xBF}
	}
}

// UnitSize returns the code unit width of e in bytes.
func (e Encoding) UnitSize() int {
	switch e {
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	default:
		return 1
	}
}

// byteOrder maps an encoding's BE/LE tag to a binary.ByteOrder. Byte
// swapping is done by explicit byte assembly, never by reinterpreting
// memory, so the host byte order is irrelevant.
func byteOrder(e Encoding) binary.ByteOrder {
	if e == UTF16BE || e == UTF32BE {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ToEncoding writes src (UTF-8) into dst in the target encoding, with a
// byte order mark first when bom is WriteBOM, and returns the number of
// bytes written excluding the terminator. The terminator (one code unit
// of zero) is always written within the bound; output may be partial if
// dst is too small, and 0 is returned when not even the mark and
// terminator fit.
func ToEncoding(dst, src []byte, enc Encoding, bom BOMPolicy) int {
	w := 0
	if bom == WriteBOM {
		mark := enc.BOM()
		if len(mark)+enc.UnitSize() > len(dst) {
			return 0
		}
		w += copy(dst, mark)
	}
	switch enc {
	case UTF16LE, UTF16BE:
		bo := byteOrder(enc)
		if len(dst)-w < 2 {
			return 0
		}
		for len(src) > 0 {
			cp, sz := DecodeUTF8Step(src)
			src = src[sz:]
			var units [3]uint16
			n := EncodeUTF16Step(units[:], cp)
			if w+2*n+2 > len(dst) {
				break
			}
			for i := 0; i < n; i++ {
				bo.PutUint16(dst[w:], units[i])
				w += 2
			}
		}
		bo.PutUint16(dst[w:], 0)
	case UTF32LE, UTF32BE:
		bo := byteOrder(enc)
		if len(dst)-w < 4 {
			return 0
		}
		for len(src) > 0 {
			cp, sz := DecodeUTF8Step(src)
			src = src[sz:]
			if w+4+4 > len(dst) {
				break
			}
			bo.PutUint32(dst[w:], uint32(cp))
			w += 4
		}
		bo.PutUint32(dst[w:], 0)
	default: // UTF8, Unknown
		if len(dst)-w < 1 {
			return 0
		}
		w += bytestream.Stream(dst[w:], src)
	}
	return w
}

// FromEncoding transcodes src into dst as UTF-8 and returns the number of
// bytes written excluding the always-written terminator. When enc is
// Unknown a byte order mark is sniffed and consumed first, falling back to
// UTF-8 when none is found. The UTF-8 path is a straight bounded copy;
// the 16- and 32-bit paths read code units in the encoding's tagged byte
// order, whatever the host order is.
func FromEncoding(dst, src []byte, enc Encoding) int {
	if enc == Unknown {
		e, n := DetectEncoding(src)
		src = src[n:]
		if e == Unknown {
			e = UTF8
		}
		enc = e
	}
	if len(dst) == 0 {
		return 0
	}
	switch enc {
	case UTF16LE, UTF16BE:
		bo := byteOrder(enc)
		w := 0
		for len(src) >= 2 {
			var units [2]uint16
			n := 1
			units[0] = bo.Uint16(src)
			if len(src) >= 4 {
				units[1] = bo.Uint16(src[2:])
				n = 2
			}
			cp, used := DecodeUTF16Step(units[:n])
			src = src[2*used:]
			k := EncodeUTF8Step(dst[w:], cp)
			if k == 0 {
				break
			}
			w += k
		}
		bytestream.Terminate(dst, w)
		return w
	case UTF32LE, UTF32BE:
		bo := byteOrder(enc)
		w := 0
		for len(src) >= 4 {
			cp := rune(bo.Uint32(src))
			src = src[4:]
			k := EncodeUTF8Step(dst[w:], cp)
			if k == 0 {
				break
			}
			w += k
		}
		bytestream.Terminate(dst, w)
		return w
	default:
		return bytestream.Stream(dst, src)
	}
}
