package axstr

import "strings"

// ReadLine removes and returns the first line of *v. Line endings may be
// "\r", "\n", or "\r\n"; the terminator is consumed but not returned.
// It returns false only when *v is empty.
func ReadLine(v *View) (View, bool) {
	s := *v
	if len(s) == 0 {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			*v = s[i+1:]
			return s[:i], true
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				*v = s[i+2:]
			} else {
				*v = s[i+1:]
			}
			return s[:i], true
		}
	}
	*v = ""
	return s, true
}

// ReadToken removes and returns the next whitespace-delimited token of
// *v. It returns false when no token remains.
func ReadToken(v *View) (View, bool) {
	s := v.TrimLeft()
	if len(s) == 0 {
		*v = s
		return "", false
	}
	i := 0
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	*v = s[i:]
	return s[:i], true
}

// ReadQuotedToken is ReadToken with '"' acting as a whitespace toggle:
// whitespace between an odd number of quotes does not end the token. The
// returned token is the raw span including any quote characters; quotes
// are counted, not backslash-aware.
func ReadQuotedToken(v *View) (View, bool) {
	s := v.TrimLeft()
	if len(s) == 0 {
		*v = s
		return "", false
	}
	quoted := false
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '"' {
			quoted = !quoted
		} else if !quoted && isSpace(c) {
			break
		}
		i++
	}
	*v = s[i:]
	return s[:i], true
}

// Split slices v into all subviews separated by sep. A zero-length sep
// yields the whole of v as the single element.
func (v View) Split(sep View) []View {
	if len(sep) == 0 {
		return []View{v}
	}
	parts := strings.Split(string(v), string(sep))
	out := make([]View, len(parts))
	for i, p := range parts {
		out[i] = View(p)
	}
	return out
}

// Join concatenates tokens with sep between each pair into a new String.
func Join(tokens []View, sep View) String {
	var s String
	for i, tok := range tokens {
		if i > 0 {
			s.Append(sep)
		}
		s.Append(tok)
	}
	return s
}
