// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

package axstr

import (
	"testing"

	"github.com/axia-sw/axstr/mem"
	"github.com/axia-sw/axstr/utf"
)

// checkInvariants asserts the terminator and capacity rules that every
// String holding memory must satisfy.
func checkInvariants(t *testing.T, s *String) {
	t.Helper()
	if s.Cap() == 0 {
		if s.Len() != 0 {
			t.Fatalf("Len() = %d with zero capacity", s.Len())
		}
		return
	}
	if s.Len() >= s.Cap() {
		t.Fatalf("Len() = %d not below Cap() = %d", s.Len(), s.Cap())
	}
	if c := s.buf[s.n]; c != 0 {
		t.Fatalf("byte after content = %#02x; want: 0", c)
	}
}

func TestReserve(t *testing.T) {
	var s String
	if !s.TryReserve(0) {
		t.Fatal("TryReserve(0) = false")
	}
	s.Assign("hello")
	checkInvariants(t, &s)

	c := s.Cap()
	if c%16 != 0 {
		t.Errorf("Cap() = %d; want a multiple of 16", c)
	}
	s.Reserve(100)
	checkInvariants(t, &s)
	if s.Cap() < 101 {
		t.Errorf("Cap() = %d after Reserve(100); want >= 101", s.Cap())
	}
	if s.String() != "hello" {
		t.Errorf("content after Reserve = %q; want: %q", s.String(), "hello")
	}

	// Capacity never shrinks.
	c = s.Cap()
	s.Reserve(1)
	if s.Cap() != c {
		t.Errorf("Cap() = %d after smaller Reserve; want: %d", s.Cap(), c)
	}
	if s.TryReserve(-1) {
		t.Error("TryReserve(-1) = true")
	}
}

func TestAssignAppend(t *testing.T) {
	var s String
	s.Assign("hello")
	s.Append(", ")
	s.Append("world")
	s.AppendByte('!')
	checkInvariants(t, &s)
	if s.String() != "hello, world!" {
		t.Errorf("content = %q; want: %q", s.String(), "hello, world!")
	}
	if s.Len() != 13 {
		t.Errorf("Len() = %d; want: 13", s.Len())
	}
	if s.View() != "hello, world!" {
		t.Errorf("View() = %q; want: %q", s.View(), "hello, world!")
	}

	s.Assign("short")
	checkInvariants(t, &s)
	if s.String() != "short" {
		t.Errorf("content after reassign = %q; want: %q", s.String(), "short")
	}
}

func TestPrepend(t *testing.T) {
	var s String
	s.Assign("world")
	s.Prepend("hello, ")
	checkInvariants(t, &s)
	if s.String() != "hello, world" {
		t.Errorf("content = %q; want: %q", s.String(), "hello, world")
	}
	s.Prepend("")
	if s.String() != "hello, world" {
		t.Errorf("content after empty Prepend = %q; want: %q", s.String(), "hello, world")
	}
	var empty String
	empty.Prepend("x")
	if empty.String() != "x" {
		t.Errorf("Prepend on empty = %q; want: %q", empty.String(), "x")
	}
}

func TestAppendPath(t *testing.T) {
	tests := []struct {
		parts []View
		out   string
	}{
		{[]View{"a", "b", "c"}, "a/b/c"},
		{[]View{"a/", "b"}, "a/b"},
		{[]View{"a", "/b"}, "a/b"},
		{[]View{"a/", "/b"}, "a//b"},
		{[]View{"", "b"}, "b"},
		{[]View{"/", "b"}, "/b"},
	}
	for _, test := range tests {
		var s String
		for _, p := range test.parts {
			s.AppendPath(p, '/')
		}
		checkInvariants(t, &s)
		if s.String() != test.out {
			t.Errorf("AppendPath%q = %q; want: %q", test.parts, s.String(), test.out)
		}
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		out        string
	}{
		{"hello, world", 5, 7, "helloworld"},
		{"hello", 0, 5, ""},
		{"hello", 0, 0, "hello"},
		{"hello", 2, 100, "he"},
		{"hello", -3, -1, "heo"},
		{"hello", -1, 0, "hello"}, // end before start removes nothing
		{"hello", 4, 2, "hello"},
	}
	for _, test := range tests {
		var s String
		s.Assign(View(test.in))
		s.Remove(test.start, test.end)
		checkInvariants(t, &s)
		if s.String() != test.out {
			t.Errorf("Remove(%q, %d, %d) = %q; want: %q",
				test.in, test.start, test.end, s.String(), test.out)
		}
	}

	var s String
	s.Assign("hello, world")
	s.RemoveRange(5, 2)
	checkInvariants(t, &s)
	if s.String() != "helloworld" {
		t.Errorf("RemoveRange(5, 2) = %q; want: %q", s.String(), "helloworld")
	}
}

func TestExtract(t *testing.T) {
	var s, dst String
	s.Assign("hello, world")
	if !s.TryExtractRange(5, 2, &dst) {
		t.Fatal("TryExtractRange = false")
	}
	checkInvariants(t, &s)
	checkInvariants(t, &dst)
	if s.String() != "helloworld" || dst.String() != ", " {
		t.Errorf("after extract: src = %q, dst = %q; want: %q, %q",
			s.String(), dst.String(), "helloworld", ", ")
	}

	s.Assign("hello, world")
	s.Extract(-5, s.Len(), &dst)
	if s.String() != "hello, " || dst.String() != "world" {
		t.Errorf("after negative extract: src = %q, dst = %q; want: %q, %q",
			s.String(), dst.String(), "hello, ", "world")
	}

	// A Null-backed destination cannot allocate, so nothing moves.
	s.Assign("hello")
	null := NewString(mem.Null{})
	if s.TryExtractRange(0, 3, &null) {
		t.Error("TryExtractRange into Null-backed dst = true")
	}
	if s.String() != "hello" {
		t.Errorf("src modified on failed extract: %q", s.String())
	}
}

func TestTruncateTrim(t *testing.T) {
	var s String
	s.Assign("hello, world")
	s.Truncate(5)
	checkInvariants(t, &s)
	if s.String() != "hello" {
		t.Errorf("Truncate(5) = %q; want: %q", s.String(), "hello")
	}
	s.Truncate(100)
	if s.String() != "hello" {
		t.Errorf("growing Truncate = %q; want: %q", s.String(), "hello")
	}
	s.Truncate(-1)
	if s.Len() != 0 {
		t.Errorf("Truncate(-1) left Len() = %d", s.Len())
	}

	s.Assign("  \t hi \r\n")
	s.TrimLeft()
	checkInvariants(t, &s)
	if s.String() != "hi \r\n" {
		t.Errorf("TrimLeft = %q; want: %q", s.String(), "hi \r\n")
	}
	s.TrimRight()
	checkInvariants(t, &s)
	if s.String() != "hi" {
		t.Errorf("TrimRight = %q; want: %q", s.String(), "hi")
	}

	s.Assign("  both  ")
	s.Trim()
	checkInvariants(t, &s)
	if s.String() != "both" {
		t.Errorf("Trim = %q; want: %q", s.String(), "both")
	}
}

func TestSlashes(t *testing.T) {
	var s String
	s.Assign(`a\b\c`)
	s.BackToForwardSlashes()
	if s.String() != "a/b/c" {
		t.Errorf("BackToForwardSlashes = %q; want: %q", s.String(), "a/b/c")
	}
	s.ForwardToBackSlashes()
	if s.String() != `a\b\c` {
		t.Errorf("ForwardToBackSlashes = %q; want: %q", s.String(), `a\b\c`)
	}
}

func TestSanitizeFilename(t *testing.T) {
	var s String
	s.Assign("a<b>c:d\"e/f\\g|h?i*j\x01k")
	s.SanitizeFilename('_')
	if s.String() != "a_b_c_d_e_f_g_h_i_j_k" {
		t.Errorf("SanitizeFilename = %q; want: %q", s.String(), "a_b_c_d_e_f_g_h_i_j_k")
	}
}

func TestSwap(t *testing.T) {
	var a, b String
	a.Assign("first")
	b.Assign("second")
	a.Swap(&b)
	if a.String() != "second" || b.String() != "first" {
		t.Errorf("Swap: a = %q, b = %q; want: %q, %q",
			a.String(), b.String(), "second", "first")
	}
	checkInvariants(t, &a)
	checkInvariants(t, &b)
}

func TestSwapSmall(t *testing.T) {
	mk := func(content View, embed int) String {
		s := NewString(mem.NewSmall(embed, mem.Heap{}))
		s.Assign(content)
		return s
	}
	tests := []struct {
		name string
		a, b String
	}{
		{"BothInline", mk("aaa", 64), mk("bbb", 64)},
		{"NeitherInline", mk("aaaaaaaaaa", 4), mk("bbbbbbbbbb", 4)},
		{"AInline", mk("aaa", 64), mk("bbbbbbbbbb", 4)},
		{"BInline", mk("aaaaaaaaaa", 4), mk("bbb", 64)},
		// Embedded sizes differ: long inline content must cross over
		// without truncation.
		{"MismatchedOneInline", mk("0123456789", 64), mk("xxxxxxxxxx", 4)},
		{"MismatchedBothInline", mk("aaaaa", 32), mk("bb", 64)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			wantA, wantB := test.b.String(), test.a.String()
			test.a.Swap(&test.b)
			checkInvariants(t, &test.a)
			checkInvariants(t, &test.b)
			if test.a.String() != wantA || test.b.String() != wantB {
				t.Errorf("a = %q, b = %q; want: %q, %q",
					test.a.String(), test.b.String(), wantA, wantB)
			}

			// Both must remain independently mutable afterwards.
			test.a.Append("!")
			if test.a.String() != wantA+"!" || test.b.String() != wantB {
				t.Errorf("post-swap mutation leaked: a = %q, b = %q",
					test.a.String(), test.b.String())
			}
		})
	}
}

func TestPurge(t *testing.T) {
	var s String
	s.Assign("hello")
	s.Purge()
	if s.Len() != 0 || s.Cap() != 0 {
		t.Errorf("after Purge: Len() = %d, Cap() = %d; want: 0, 0", s.Len(), s.Cap())
	}
	s.Assign("again")
	if s.String() != "again" {
		t.Errorf("reuse after Purge = %q; want: %q", s.String(), "again")
	}
}

func TestNullAllocator(t *testing.T) {
	s := NewString(mem.Null{})
	if s.TryAssign("hello") {
		t.Error("TryAssign on Null-backed String = true")
	}
	if s.Len() != 0 || s.Cap() != 0 {
		t.Errorf("Null-backed String grew: Len() = %d, Cap() = %d", s.Len(), s.Cap())
	}
	// Even a zero-length reserve needs the terminator slot.
	if s.TryReserve(0) {
		t.Error("TryReserve(0) on Null-backed String = true")
	}
}

func TestSmallNoHeapAllocs(t *testing.T) {
	small := mem.NewSmall(16, mem.Null{})
	s := NewString(small)
	allocs := testing.AllocsPerRun(100, func() {
		s.Purge()
		if !s.TryReserve(10) {
			t.Fatal("TryReserve within embedded capacity failed")
		}
		if !s.TryAssign("0123456789") {
			t.Fatal("TryAssign within embedded capacity failed")
		}
	})
	if allocs != 0 {
		t.Errorf("AllocsPerRun = %g; want: 0", allocs)
	}
}

func TestTryFailureAtomic(t *testing.T) {
	small := mem.NewSmall(16, mem.Null{})
	s := NewString(small)
	if !s.TryAssign("hello") {
		t.Fatal("TryAssign within embedded capacity failed")
	}
	// Growing past the embedded buffer must fail and leave s untouched.
	if s.TryAppend("0123456789abcdef") {
		t.Error("TryAppend past embedded capacity = true")
	}
	if s.String() != "hello" {
		t.Errorf("content after failed append = %q; want: %q", s.String(), "hello")
	}
	checkInvariants(t, &s)
}

func TestAssignFromEncoding(t *testing.T) {
	var s String
	utf16le := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	s.AssignFromEncoding(utf16le, utf.Unknown)
	if s.String() != "hi" {
		t.Errorf("AssignFromEncoding(UTF-16LE BOM) = %q; want: %q", s.String(), "hi")
	}
	checkInvariants(t, &s)

	s.AssignFromEncoding([]byte("plain"), utf.Unknown)
	if s.String() != "plain" {
		t.Errorf("AssignFromEncoding(no BOM) = %q; want: %q", s.String(), "plain")
	}
}

func TestEncodeTo(t *testing.T) {
	var s String
	s.Assign("hi")
	got := s.EncodeTo(utf.UTF16LE, utf.WriteBOM)
	want := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	if len(got) != len(want) {
		t.Fatalf("EncodeTo(UTF16LE) = % X; want: % X", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("EncodeTo(UTF16LE) = % X; want: % X", got, want)
		}
	}

	// Transcode round trip through every encoding.
	s.Assign("héllo, wörld")
	for _, enc := range []utf.Encoding{utf.UTF8, utf.UTF16LE, utf.UTF16BE, utf.UTF32LE, utf.UTF32BE} {
		data := s.EncodeTo(enc, utf.WriteBOM)
		var back String
		back.AssignFromEncoding(data, utf.Unknown)
		if back.String() != s.String() {
			t.Errorf("round trip through %v = %q; want: %q", enc, back.String(), s.String())
		}
	}
}
