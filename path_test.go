package axstr

import "testing"

func TestPathParts(t *testing.T) {
	tests := []struct {
		in                         View
		ext, file, dir, base, root View
	}{
		{"a/b/c.txt", ".txt", "c.txt", "a/b", "c", ""},
		{`a\b\c.txt`, ".txt", "c.txt", `a\b`, "c", ""},
		{"c.txt", ".txt", "c.txt", "", "c", ""},
		{"/c.txt", ".txt", "c.txt", "/", "c", "/"},
		{"a/b/noext", "", "noext", "a/b", "noext", ""},
		{"a.dir/noext", "", "noext", "a.dir", "noext", ""},
		{"archive.tar.gz", ".gz", "archive.tar.gz", "", "archive.tar", ""},
		{"a/b/", "", "", "a/b", "", ""},
		{".hidden", ".hidden", ".hidden", "", "", ""},
		{`C:\tools\x.exe`, ".exe", "x.exe", `C:\tools`, "x", `C:\`},
		{"C:rel", "", "C:rel", "", "C:rel", "C:"},
		{"/usr/lib", "", "lib", "/usr", "lib", "/"},
		{"", "", "", "", "", ""},
	}
	for _, test := range tests {
		if out := test.in.Extension(); out != test.ext {
			t.Errorf("Extension(%q) = %q; want: %q", test.in, out, test.ext)
		}
		if out := test.in.Filename(); out != test.file {
			t.Errorf("Filename(%q) = %q; want: %q", test.in, out, test.file)
		}
		if out := test.in.Directory(); out != test.dir {
			t.Errorf("Directory(%q) = %q; want: %q", test.in, out, test.dir)
		}
		if out := test.in.Basename(); out != test.base {
			t.Errorf("Basename(%q) = %q; want: %q", test.in, out, test.base)
		}
		if out := test.in.Root(); out != test.root {
			t.Errorf("Root(%q) = %q; want: %q", test.in, out, test.root)
		}
	}
}

func TestRelativePath(t *testing.T) {
	tests := []struct {
		from, to View
		out      string
	}{
		{"a/b", "a/b/c.txt", "c.txt"},
		{"a/b", "a/x/y.txt", "../x/y.txt"},
		{"a/b/c", "a", "../.."},
		{"a/b", "a/b", ""},
		{"/usr/lib", "/usr/share/doc", "../share/doc"},
		// Components compare without regard to ASCII case.
		{"A/B", "a/b/c.txt", "c.txt"},
		// Mixed separators split the same way.
		{`a\b`, "a/b/c.txt", "c.txt"},
		{"", "x/y", "x/y"},
	}
	for _, test := range tests {
		out := RelativePath(test.from, test.to)
		if out.String() != test.out {
			t.Errorf("RelativePath(%q, %q) = %q; want: %q",
				test.from, test.to, out.String(), test.out)
		}
	}
}
