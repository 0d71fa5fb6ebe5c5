package axstr

import "github.com/axia-sw/axstr/internal/bytealg"

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isAlpha(c byte) bool { return isUpper(c) || isLower(c) }

// _lower maps each byte to its ASCII lower-case form.
var _lower = [256]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, ' ', '!', '"', '#', '$', '%',
	'&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', '0', '1', '2', '3', '4',
	'5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', '@', 'a', 'b', 'c',
	'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r',
	's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '[', '\\', ']', '^', '_', '`', 'a',
	'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
	'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', 127,
	128, 129, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142,
	143, 144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155, 156, 157,
	158, 159, 160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172,
	173, 174, 175, 176, 177, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187,
	188, 189, 190, 191, 192, 193, 194, 195, 196, 197, 198, 199, 200, 201, 202,
	203, 204, 205, 206, 207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 217,
	218, 219, 220, 221, 222, 223, 224, 225, 226, 227, 228, 229, 230, 231, 232,
	233, 234, 235, 236, 237, 238, 239, 240, 241, 242, 243, 244, 245, 246, 247,
	248, 249, 250, 251, 252, 253, 254, 255,
}

// hasPrefixASCII tests whether s begins with prefix ignoring ASCII case.
func hasPrefixASCII(s, prefix View) bool {
	if len(s) >= len(prefix) {
		for i := 0; i < len(prefix); i++ {
			if _lower[s[i]] != _lower[prefix[i]] {
				return false
			}
		}
		return true
	}
	return false
}

// equalASCII reports whether s and t are equal ignoring ASCII case.
func equalASCII(s, t View) bool {
	return len(s) == len(t) && hasPrefixASCII(s, t)
}

// caseFindASCII returns the first case-insensitive occurrence of substr in
// s, for an all-ASCII substr of length >= 1.
func caseFindASCII(s, substr View) int {
	c0 := _lower[substr[0]]
	if len(substr) == 1 {
		return bytealg.IndexByte(string(s), substr[0])
	}
	c1 := _lower[substr[1]]
	t := len(s) - len(substr) + 1
	for i := 0; i < t; i++ {
		if _lower[s[i]] != c0 {
			// IndexByte checks both cases of an ASCII letter, so it can
			// skip ahead without missing a candidate.
			o := bytealg.IndexByte(string(s[i+1:t]), substr[0])
			if o < 0 {
				return -1
			}
			i += o + 1
		}
		if _lower[s[i+1]] == c1 && hasPrefixASCII(s[i+2:], substr[2:]) {
			return i
		}
	}
	return -1
}

// caseFindLastASCII returns the last case-insensitive occurrence of substr
// in s, for an all-ASCII substr of length >= 1.
func caseFindLastASCII(s, substr View) int {
	c0 := substr[0]
	for i := len(s) - len(substr); i >= 0; {
		// LastIndexByte checks both cases of an ASCII letter, so every
		// candidate start is found in one pass.
		o := bytealg.LastIndexByte(string(s[:i+1]), c0)
		if o < 0 {
			return -1
		}
		if hasPrefixASCII(s[o:], substr) {
			return o
		}
		i = o - 1
	}
	return -1
}

func isASCII(s View) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
