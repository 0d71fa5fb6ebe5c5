// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

package axstr

import (
	"strings"
	"unsafe"

	"github.com/axia-sw/axstr/internal/bytestream"
	"github.com/axia-sw/axstr/mem"
	"github.com/axia-sw/axstr/utf"
)

// A String is an owned, growable byte buffer. Whenever it holds memory
// the byte after its content is a NUL terminator, and its length is
// strictly less than its capacity. Capacity never shrinks except through
// [String.Purge].
//
// The zero value is an empty String backed by the heap allocator.
// Operations that can allocate come in pairs: the "Try" form reports
// failure and leaves the String exactly as it was, and the plain form
// calls the Try form and silently ignores failure.
//
// A String is not safe for concurrent mutation; the caller owns
// synchronization.
type String struct {
	buf []byte // len(buf) is the capacity, including the terminator slot
	n   int    // content length in bytes, excluding the terminator
	al  mem.Allocator
}

// NewString returns a String backed by al. A nil al selects the heap.
func NewString(al mem.Allocator) String {
	return String{al: al}
}

func (s *String) allocator() mem.Allocator {
	if s.al == nil {
		return mem.Heap{}
	}
	return s.al
}

// Len returns the content length in bytes, excluding the terminator.
func (s *String) Len() int { return s.n }

// Cap returns the capacity in bytes, including the terminator slot.
func (s *String) Cap() int { return len(s.buf) }

// IsEmpty reports whether the String has zero length.
func (s *String) IsEmpty() bool { return s.n == 0 }

// View returns a zero-copy read-only projection of the content. It is
// valid only until the String is next mutated or purged.
func (s *String) View() View {
	if s.n == 0 {
		return ""
	}
	return View(unsafe.String(&s.buf[0], s.n))
}

// String returns a copy of the content.
func (s *String) String() string {
	return string(s.buf[:s.n])
}

// Bytes returns the content bytes without copying. The slice is valid
// only until the String is next mutated or purged.
func (s *String) Bytes() []byte { return s.buf[:s.n] }

// TryReserve grows the buffer so that at least n content bytes plus the
// terminator fit. The request is rounded up to the next multiple of 16.
// Existing content and its terminator are copied into the new buffer
// before the old one is released, so on failure the String is untouched.
// Capacity never decreases.
func (s *String) TryReserve(n int) bool {
	if n < 0 {
		return false
	}
	if n+1 <= len(s.buf) {
		return true
	}
	nb := s.allocator().Alloc((n + 16) &^ 15)
	if nb == nil {
		return false
	}
	if len(s.buf) > 0 {
		copy(nb, s.buf[:s.n+1])
	} else {
		nb[0] = 0
	}
	old := s.buf
	s.buf = nb
	if old != nil {
		s.allocator().Free(old)
	}
	return true
}

// Reserve is TryReserve ignoring failure.
func (s *String) Reserve(n int) { s.TryReserve(n) }

// TryAssign replaces the content with v.
func (s *String) TryAssign(v View) bool {
	if !s.TryReserve(len(v)) {
		return false
	}
	s.n = bytestream.Stream(s.buf, viewBytes(v))
	return true
}

// Assign is TryAssign ignoring failure.
func (s *String) Assign(v View) { s.TryAssign(v) }

// TryAppend appends v to the content.
func (s *String) TryAppend(v View) bool {
	if !s.TryReserve(s.n + len(v)) {
		return false
	}
	s.n += bytestream.Stream(s.buf[s.n:], viewBytes(v))
	return true
}

// Append is TryAppend ignoring failure.
func (s *String) Append(v View) { s.TryAppend(v) }

// TryAppendByte appends a single byte.
func (s *String) TryAppendByte(c byte) bool {
	if !s.TryReserve(s.n + 1) {
		return false
	}
	s.buf[s.n] = c
	s.n++
	s.buf[s.n] = 0
	return true
}

// AppendByte is TryAppendByte ignoring failure.
func (s *String) AppendByte(c byte) { s.TryAppendByte(c) }

// TryPrepend inserts v before the content, shifting it right in place.
func (s *String) TryPrepend(v View) bool {
	if len(v) == 0 {
		return s.TryReserve(s.n)
	}
	if !s.TryReserve(s.n + len(v)) {
		return false
	}
	// Shift content and terminator, then fill the gap.
	copy(s.buf[len(v):], s.buf[:s.n+1])
	copy(s.buf, viewBytes(v))
	s.n += len(v)
	return true
}

// Prepend is TryPrepend ignoring failure.
func (s *String) Prepend(v View) { s.TryPrepend(v) }

// TryAppendPath appends v as a path component: sep is inserted between
// the operands unless the content already ends with a path separator or
// v already starts with one.
func (s *String) TryAppendPath(v View, sep byte) bool {
	needSep := s.n > 0 && !isPathSep(s.buf[s.n-1]) &&
		!(len(v) > 0 && isPathSep(v[0]))
	extra := len(v)
	if needSep {
		extra++
	}
	if !s.TryReserve(s.n + extra) {
		return false
	}
	if needSep {
		s.buf[s.n] = sep
		s.n++
	}
	s.n += bytestream.Stream(s.buf[s.n:], viewBytes(v))
	return true
}

// AppendPath is TryAppendPath ignoring failure.
func (s *String) AppendPath(v View, sep byte) { s.TryAppendPath(v, sep) }

// clampRange clamps an (offset, size) pair into the content.
func (s *String) clampRange(offset, size int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > s.n {
		offset = s.n
	}
	if size < 0 {
		size = 0
	}
	if size > s.n-offset {
		size = s.n - offset
	}
	return offset, size
}

// RemoveRange deletes size bytes starting at offset, closing the gap
// with one bounded move. The range is clamped into the content.
func (s *String) RemoveRange(offset, size int) {
	offset, size = s.clampRange(offset, size)
	if size == 0 {
		return
	}
	// Move the right-hand survivors, terminator included.
	copy(s.buf[offset:], s.buf[offset+size:s.n+1])
	s.n -= size
}

// Remove deletes the bytes in [start, end). Negative positions count
// from the end of the content.
func (s *String) Remove(start, end int) {
	a := resolve(start, s.n)
	b := resolve(end, s.n)
	if b < a {
		b = a
	}
	s.RemoveRange(a, b-a)
}

// TryExtractRange copies the range into dst, then removes it. On
// allocation failure in dst, nothing is removed.
func (s *String) TryExtractRange(offset, size int, dst *String) bool {
	offset, size = s.clampRange(offset, size)
	if !dst.TryReserve(size) {
		return false
	}
	dst.n = bytestream.Stream(dst.buf, s.buf[offset:offset+size])
	s.RemoveRange(offset, size)
	return true
}

// ExtractRange is TryExtractRange ignoring failure.
func (s *String) ExtractRange(offset, size int, dst *String) {
	s.TryExtractRange(offset, size, dst)
}

// TryExtract copies the bytes in [start, end) into dst and removes them.
// Negative positions count from the end of the content.
func (s *String) TryExtract(start, end int, dst *String) bool {
	a := resolve(start, s.n)
	b := resolve(end, s.n)
	if b < a {
		b = a
	}
	return s.TryExtractRange(a, b-a, dst)
}

// Extract is TryExtract ignoring failure.
func (s *String) Extract(start, end int, dst *String) {
	s.TryExtract(start, end, dst)
}

// Truncate shortens the content to n bytes. It never grows.
func (s *String) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < s.n {
		s.n = n
		s.buf[n] = 0
	}
}

// TrimLeft removes leading whitespace (bytes <= 0x20) in place.
func (s *String) TrimLeft() {
	i := 0
	for i < s.n && isSpace(s.buf[i]) {
		i++
	}
	if i > 0 {
		copy(s.buf, s.buf[i:s.n+1])
		s.n -= i
	}
}

// TrimRight removes trailing whitespace in place.
func (s *String) TrimRight() {
	for s.n > 0 && isSpace(s.buf[s.n-1]) {
		s.n--
	}
	if len(s.buf) > 0 {
		s.buf[s.n] = 0
	}
}

// Trim removes leading and trailing whitespace in place.
func (s *String) Trim() {
	s.TrimRight()
	s.TrimLeft()
}

// BackToForwardSlashes rewrites every '\' in the content to '/'.
func (s *String) BackToForwardSlashes() {
	for i := 0; i < s.n; i++ {
		if s.buf[i] == '\\' {
			s.buf[i] = '/'
		}
	}
}

// ForwardToBackSlashes rewrites every '/' in the content to '\'.
func (s *String) ForwardToBackSlashes() {
	for i := 0; i < s.n; i++ {
		if s.buf[i] == '/' {
			s.buf[i] = '\\'
		}
	}
}

// filenameUnsafe holds the bytes that SanitizeFilename replaces, in
// addition to control bytes.
const filenameUnsafe = `<>:"/\|?*`

// SanitizeFilename replaces every disallowed filename byte (<>:"/\|?*
// and control bytes below 0x20) with repl, in place.
func (s *String) SanitizeFilename(repl byte) {
	for i := 0; i < s.n; i++ {
		c := s.buf[i]
		if c < 0x20 || strings.IndexByte(filenameUnsafe, c) >= 0 {
			s.buf[i] = repl
		}
	}
}

// Swap exchanges the contents, lengths, and buffers of s and o through
// the allocation policy, which handles embedded small-buffer storage.
// When the policy cannot complete the exchange both Strings are left
// untouched.
func (s *String) Swap(o *String) {
	if s.allocator().Swap(o.allocator(), &s.buf, &o.buf) {
		s.n, o.n = o.n, s.n
	}
}

// Purge releases the buffer back to the allocator and resets the
// capacity to zero. This is the only operation that shrinks capacity.
func (s *String) Purge() {
	if s.buf != nil {
		s.allocator().Free(s.buf)
		s.buf = nil
	}
	s.n = 0
}

// TryAssignFromEncoding decodes data in the given encoding (Unknown
// sniffs a byte order mark, falling back to UTF-8) and assigns the UTF-8
// result. On allocation failure the String is untouched.
func (s *String) TryAssignFromEncoding(data []byte, enc utf.Encoding) bool {
	// Worst case growth is UTF-16 to UTF-8: three bytes per unit.
	if !s.TryReserve(len(data)*3 + 1) {
		return false
	}
	s.n = utf.FromEncoding(s.buf, data, enc)
	return true
}

// AssignFromEncoding is TryAssignFromEncoding ignoring failure.
func (s *String) AssignFromEncoding(data []byte, enc utf.Encoding) {
	s.TryAssignFromEncoding(data, enc)
}

// EncodeTo returns the content transcoded into enc, with a byte order
// mark first when bom is WriteBOM. The terminator is not included in the
// returned slice.
func (s *String) EncodeTo(enc utf.Encoding, bom utf.BOMPolicy) []byte {
	out := make([]byte, (s.n+1)*enc.UnitSize()+len(enc.BOM()))
	w := utf.ToEncoding(out, s.Bytes(), enc, bom)
	return out[:w]
}
