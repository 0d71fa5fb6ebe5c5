// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package mem defines the allocation policy used by the growable string
// buffer. A policy hands out byte buffers, takes them back, and knows how
// to exchange buffer ownership between two instances of itself, which is
// non-trivial for the small-buffer policy since embedded storage cannot be
// swapped by pointer.
package mem

// An Allocator is a pluggable allocation strategy.
//
// Alloc returns a buffer whose length is the actual capacity granted,
// which may exceed n; it returns nil on failure. Free returns a buffer
// previously obtained from the same Allocator. Swap exchanges ownership of
// *a (held by the receiver) and *b (held by other) and reports whether the
// exchange happened; on failure both operands are left untouched.
type Allocator interface {
	Alloc(n int) []byte
	Free(b []byte)
	Swap(other Allocator, a, b *[]byte) bool
}

// Heap delegates to the runtime allocator. The zero value is ready to use.
type Heap struct{}

func (Heap) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}

// Free is a no-op: the runtime reclaims unreferenced buffers.
func (Heap) Free([]byte) {}

func (Heap) Swap(_ Allocator, a, b *[]byte) bool {
	*a, *b = *b, *a
	return true
}

// Null refuses every allocation. Backing a container with Null proves the
// container never allocates.
type Null struct{}

func (Null) Alloc(int) []byte { return nil }

func (Null) Free([]byte) {}

func (Null) Swap(_ Allocator, a, b *[]byte) bool {
	*a, *b = *b, *a
	return true
}

// Small serves allocations that fit from a fixed embedded buffer and
// delegates everything else to an overflow policy. The embedded buffer is
// created once at construction and reused; an in-use flag tracks whether
// it is currently lent out.
type Small struct {
	buf      []byte
	used     bool
	overflow Allocator
}

// NewSmall returns a Small policy with an embedded buffer of size bytes.
// overflow handles requests that do not fit; nil means Heap.
func NewSmall(size int, overflow Allocator) *Small {
	if overflow == nil {
		overflow = Heap{}
	}
	return &Small{buf: make([]byte, size), overflow: overflow}
}

// Size returns the embedded buffer size in bytes.
func (s *Small) Size() int { return len(s.buf) }

// InUse reports whether the embedded buffer is currently lent out.
func (s *Small) InUse() bool { return s.used }

// owns reports whether b is the embedded buffer.
func (s *Small) owns(b []byte) bool {
	return s.used && len(b) > 0 && len(s.buf) > 0 && &b[0] == &s.buf[0]
}

func (s *Small) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	if n <= len(s.buf) && !s.used {
		s.used = true
		return s.buf[:len(s.buf)]
	}
	return s.overflow.Alloc(n)
}

func (s *Small) Free(b []byte) {
	if s.owns(b) {
		s.used = false
		return
	}
	s.overflow.Free(b)
}

// Swap exchanges ownership of *a (held by s) and *b (held by other).
// There are four cases depending on which operand currently points into
// its own embedded storage:
//
//   - neither: plain exchange through the overflow policy
//   - one: its embedded bytes move into the other's embedded slot when
//     they fit, else into a buffer from the other's overflow; the donor
//     takes the heap pointer
//   - both, equal sizes: contents are exchanged through a bounded stack
//     scratch, no allocation
//   - both, unequal sizes: the larger side's bytes cannot fit the smaller
//     slot, so they move through the smaller side's overflow
//
// Swap fails, leaving both operands untouched, only when new storage is
// needed and the overflow policy refuses it.
func (s *Small) Swap(other Allocator, a, b *[]byte) bool {
	o, ok := other.(*Small)
	if !ok {
		return s.overflow.Swap(other, a, b)
	}
	aInline := s.owns(*a)
	bInline := o.owns(*b)

	switch {
	case !aInline && !bInline:
		return s.overflow.Swap(o.overflow, a, b)

	case aInline && !bInline:
		if len(*a) > len(o.buf) {
			nb := o.overflow.Alloc(len(*a))
			if nb == nil {
				return false
			}
			copy(nb, *a)
			s.used = false
			*a, *b = *b, nb
			return true
		}
		copy(o.buf, *a)
		s.used, o.used = false, true
		*a, *b = *b, o.buf[:len(o.buf)]
		return true

	case !aInline && bInline:
		if len(*b) > len(s.buf) {
			nb := s.overflow.Alloc(len(*b))
			if nb == nil {
				return false
			}
			copy(nb, *b)
			o.used = false
			*a, *b = nb, *a
			return true
		}
		copy(s.buf, *b)
		s.used, o.used = true, false
		*a, *b = s.buf[:len(s.buf)], *a
		return true

	default: // both inline
		if len(s.buf) == len(o.buf) {
			swapContents(s.buf, o.buf)
			*a, *b = s.buf[:len(s.buf)], o.buf[:len(o.buf)]
			return true
		}
		if len(s.buf) < len(o.buf) {
			nb := s.overflow.Alloc(len(*b))
			if nb == nil {
				return false
			}
			copy(nb, *b)
			copy(o.buf, *a)
			s.used = false
			*a, *b = nb, o.buf[:len(o.buf)]
			return true
		}
		nb := o.overflow.Alloc(len(*a))
		if nb == nil {
			return false
		}
		copy(nb, *a)
		copy(s.buf, *b)
		o.used = false
		*a, *b = s.buf[:len(s.buf)], nb
		return true
	}
}

// swapContents exchanges the bytes of x and y (up to the shorter length)
// through a fixed scratch so that no allocation happens.
func swapContents(x, y []byte) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	var tmp [128]byte
	for i := 0; i < n; i += len(tmp) {
		m := n - i
		if m > len(tmp) {
			m = len(tmp)
		}
		copy(tmp[:m], x[i:i+m])
		copy(x[i:i+m], y[i:i+m])
		copy(y[i:i+m], tmp[:m])
	}
}
