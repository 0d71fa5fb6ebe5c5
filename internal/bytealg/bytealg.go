// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg provides the byte-level search helpers shared by the
// view search code. Searches are ASCII case-insensitive where noted; the
// caller handles Unicode folding.
package bytealg

import "strings"

func isAlpha(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// IndexByte returns the first index of c in s, matching ASCII letters
// case-insensitively, or -1.
func IndexByte(s string, c byte) int {
	n := strings.IndexByte(s, c)
	if n == 0 || !isAlpha(c) {
		return n
	}

	if n > 0 && len(s) >= 16 {
		s = s[:n] // limit search space
	}

	c ^= ' ' // swap case
	if o := strings.IndexByte(s, c); n == -1 || (o != -1 && o < n) {
		n = o
	}
	return n
}

// LastIndexByte returns the last index of c in s, matching ASCII letters
// case-insensitively, or -1.
func LastIndexByte(s string, c byte) int {
	n := strings.LastIndexByte(s, c)
	if !isAlpha(c) {
		return n
	}
	if o := strings.LastIndexByte(s, c^' '); o > n {
		n = o
	}
	return n
}

// Count returns the number of bytes in s equal to c, matching ASCII
// letters case-insensitively.
func Count(s string, c byte) int {
	if !isAlpha(c) {
		return strings.Count(s, string(c))
	}
	n := 0
	c |= ' '
	for i := 0; i < len(s); i++ {
		if s[i]|' ' == c {
			n++
		}
	}
	return n
}
