// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytestream implements the bounded, truncation-safe write
// primitives that every buffer-mutating string operation is built on.
//
// All functions treat the destination as a capacity-bounded byte run whose
// final byte is reserved for a NUL terminator. Writes never exceed the
// destination and the terminator is rewritten after every copy, so a caller
// composing these primitives cannot lose termination no matter how the
// source and destination sizes relate.
package bytestream

// Stream copies up to len(dst)-1 bytes from src into dst, writes a NUL
// terminator immediately after the copied bytes, and returns the number of
// bytes copied (the terminator excluded). dst must have room for at least
// the terminator; a zero-length dst writes nothing and returns 0.
func Stream(dst, src []byte) int {
	if len(dst) == 0 {
		return 0
	}
	n := len(src)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst, src[:n])
	dst[n] = 0
	return n
}

// Move is Stream for overlapping ranges: dst and src may alias the same
// buffer. Go's copy already handles overlap, so the only difference from
// Stream is documentation of intent at call sites that shift in place.
func Move(dst, src []byte) int {
	return Stream(dst, src)
}

// Copy copies up to len(dst) bytes from src with no terminator handling.
// It is the raw bounded copy used where the caller terminates itself.
func Copy(dst, src []byte) int {
	return copy(dst, src)
}

// Terminate writes a NUL at dst[n] when n is inside dst. It reports whether
// the terminator was written.
func Terminate(dst []byte, n int) bool {
	if n < 0 || n >= len(dst) {
		return false
	}
	dst[n] = 0
	return true
}
