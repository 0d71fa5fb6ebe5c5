// Copyright 2026 Axia. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package axstr is a byte-oriented string toolkit built around two types:
// [View], an immutable non-owning slice with search, slicing, tokenizing,
// numeric parsing and escape support, and [String], an owned growable
// buffer with a pluggable allocation policy (see [github.com/axia-sw/axstr/mem])
// that stays NUL-terminated whenever it holds memory and never loses state
// on allocation failure.
//
// Unicode transcoding, byte-order-mark detection, and the underlying
// lenient UTF-8/UTF-16 step codecs live in [github.com/axia-sw/axstr/utf].
//
// Except where noted, simple Unicode case-folding is used to determine
// case-insensitive equality.
package axstr
