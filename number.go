package axstr

import "math"

// RadixStyle selects how a numeric literal's radix prefix is detected.
type RadixStyle uint8

const (
	// RadixC detects C-style prefixes: 0x/0X is hex, 0b/0B is binary, a
	// leading 0 not followed by '.' is octal, anything else is decimal.
	RadixC RadixStyle = iota

	// RadixBasic detects BASIC-style prefixes: % is binary, $ is hex,
	// 0b/0c/0d/0h/0x select base 2/8/10/16, and an explicit decimal
	// radix immediately followed by 'x' (e.g. "13x...") selects that
	// base (2 through 36). Anything else is decimal.
	RadixBasic
)

// digitVal returns the numeric value of c in bases up to 36, or -1.
func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// isDigitSep reports whether c is a digit-group separator byte. Both the
// C++14 apostrophe and the underscore are accepted.
func isDigitSep(c byte) bool { return c == '\'' || c == '_' }

// detectRadix consumes any radix prefix of s and returns the detected
// base with the rest of the input.
func detectRadix(s View, style RadixStyle) (int, View) {
	if len(s) == 0 {
		return 10, s
	}
	if style == RadixBasic {
		switch s[0] {
		case '%':
			return 2, s[1:]
		case '$':
			return 16, s[1:]
		}
		if len(s) >= 2 && s[0] == '0' {
			switch _lower[s[1]] {
			case 'b':
				return 2, s[2:]
			case 'c':
				return 8, s[2:]
			case 'd':
				return 10, s[2:]
			case 'h', 'x':
				return 16, s[2:]
			}
		}
		// Explicit "<decimal>x" radix, e.g. "13x31" is 31 in base 13.
		i, r := 0, 0
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			r = r*10 + int(s[i]-'0')
			i++
		}
		if i > 0 && i < len(s) && _lower[s[i]] == 'x' && 2 <= r && r <= 36 {
			return r, s[i+1:]
		}
		return 10, s
	}

	// C style.
	if len(s) >= 2 && s[0] == '0' {
		switch _lower[s[1]] {
		case 'x':
			return 16, s[2:]
		case 'b':
			return 2, s[2:]
		}
		if s[1] != '.' {
			return 8, s[1:]
		}
	}
	return 10, s
}

// parseDigits accumulates digits of the given radix from the front of s,
// skipping a digit-group separator when it is immediately followed by a
// valid digit. It returns the value, the rest of s, and the digit count.
func parseDigits(s View, radix int) (uint64, View, int) {
	var u uint64
	n := 0
	for len(s) > 0 {
		c := s[0]
		if isDigitSep(c) && len(s) > 1 && digitVal(s[1]) >= 0 && digitVal(s[1]) < radix {
			s = s[1:]
			continue
		}
		d := digitVal(c)
		if d < 0 || d >= radix {
			break
		}
		u = u*uint64(radix) + uint64(d)
		s = s[1:]
		n++
	}
	return u, s, n
}

// ParseUint parses an unsigned integer from the front of v, trimming
// leading whitespace and auto-detecting the radix per style. Parsing
// stops at the first byte that is not a digit of the detected radix.
func (v View) ParseUint(style RadixStyle) uint64 {
	s := v.TrimLeft()
	radix, s := detectRadix(s, style)
	u, _, _ := parseDigits(s, radix)
	return u
}

// ParseInt is ParseUint with an optional leading '+' or '-' sign.
func (v View) ParseInt(style RadixStyle) int64 {
	s := v.TrimLeft()
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	radix, s := detectRadix(s, style)
	u, _, _ := parseDigits(s, radix)
	if neg {
		return -int64(u)
	}
	return int64(u)
}

// ParseFloat parses a floating point value from the front of v. The whole
// and fractional parts are read in the detected radix; an optional 'e' or
// 'p' exponent (either case) is then applied, and its digits are always
// decimal, whatever the mantissa's radix. For radices where 'e' is a
// digit (15 and up), 'p' is the only usable exponent marker.
func (v View) ParseFloat(style RadixStyle) float64 {
	s := v.TrimLeft()
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	radix, s := detectRadix(s, style)

	whole, s, _ := parseDigits(s, radix)
	f := float64(whole)

	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		frac, rest, n := parseDigits(s, radix)
		if n > 0 {
			f += float64(frac) / math.Pow(float64(radix), float64(n))
		}
		s = rest
	}

	if len(s) > 0 && (_lower[s[0]] == 'e' || _lower[s[0]] == 'p') {
		s = s[1:]
		eneg := false
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			eneg = s[0] == '-'
			s = s[1:]
		}
		exp, _, n := parseDigits(s, 10)
		if n > 0 {
			e := float64(exp)
			if eneg {
				e = -e
			}
			f *= math.Pow(10, e)
		}
	}

	if neg {
		return -f
	}
	return f
}
