package axstr

// isPathSep reports whether c separates path components. Both slash
// flavors are accepted on every platform.
func isPathSep(c byte) bool { return c == '/' || c == '\\' }

// lastSep returns the index of the last path separator in v, or -1.
func lastSep(v View) int {
	for i := len(v) - 1; i >= 0; i-- {
		if isPathSep(v[i]) {
			return i
		}
	}
	return -1
}

// Extension returns the extension of the last path component including
// its dot ("a/b/c.txt" yields ".txt"), or an empty View.
func (v View) Extension() View {
	sep := lastSep(v)
	for i := len(v) - 1; i > sep; i-- {
		if v[i] == '.' {
			return v[i:]
		}
	}
	return ""
}

// Filename returns the last path component ("a/b/c.txt" yields "c.txt").
func (v View) Filename() View {
	return v[lastSep(v)+1:]
}

// Directory returns everything before the last path component, without
// the trailing separator ("a/b/c.txt" yields "a/b"). A path with no
// separator yields an empty View; a root-only path keeps its separator.
func (v View) Directory() View {
	sep := lastSep(v)
	if sep < 0 {
		return ""
	}
	if sep == 0 {
		return v[:1]
	}
	return v[:sep]
}

// Basename returns the last path component without its extension
// ("a/b/c.txt" yields "c").
func (v View) Basename() View {
	name := v.Filename()
	ext := v.Extension()
	return name[:len(name)-len(ext)]
}

// Root returns the root of the path: a leading separator, or a drive
// letter with its colon and any following separator ("C:\x" yields
// "C:\"). Relative paths yield an empty View.
func (v View) Root() View {
	if len(v) > 0 && isPathSep(v[0]) {
		return v[:1]
	}
	if len(v) >= 2 && isAlpha(v[0]) && v[1] == ':' {
		if len(v) >= 3 && isPathSep(v[2]) {
			return v[:3]
		}
		return v[:2]
	}
	return ""
}

// splitPath slices v into its components, dropping empty ones (repeated
// or trailing separators).
func splitPath(v View) []View {
	var parts []View
	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || isPathSep(v[i]) {
			if i > start {
				parts = append(parts, v[start:i])
			}
			start = i + 1
		}
	}
	return parts
}

// RelativePath returns the path of "to" relative to the directory "from":
// the common leading components are stripped and one ".." is prepended
// for each remaining component of from.
func RelativePath(from, to View) String {
	f := splitPath(from)
	t := splitPath(to)

	i := 0
	for i < len(f) && i < len(t) && equalASCII(f[i], t[i]) {
		i++
	}

	var s String
	for range f[i:] {
		s.AppendPath("..", '/')
	}
	for _, part := range t[i:] {
		s.AppendPath(part, '/')
	}
	return s
}
