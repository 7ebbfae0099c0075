package naming

import "strings"

// Abbreviate shortens a directory path so that it fits within goal bytes.
// The input is a '/'-separated run of directory segments ending in '/';
// the filename of a full path must be split off before calling.
//
// Segments are shrunk left to right. A segment reduced all the way down
// keeps only its first character; a segment shrunk partially keeps its
// leading characters with a '~' marker in place of the removed tail.
// e.g., scripts/presets/keyconfig/keymap_data/ at goal 16 becomes
// s/p/k/keymap_d~/
//
// A goal of zero or less abbreviates maximally. Input without a separator
// is returned unchanged regardless of length.
func Abbreviate(dir string, goal int) string {
	overflow := len(dir) - goal
	if overflow <= 0 {
		return dir
	}

	var b strings.Builder
	b.Grow(len(dir))

	i := 0
	for overflow > 0 {
		// Leading separator runs pass through untouched.
		start := i
		for start < len(dir) && dir[start] == '/' {
			start++
		}
		if start == len(dir) {
			break
		}
		sep := strings.IndexByte(dir[start:], '/')
		if sep < 0 {
			// Dangling segment without a trailing separator: leave it.
			break
		}
		sep += start

		// A segment of n bytes can absorb at most n-1 of the overflow.
		segLen := sep - start
		absorb := segLen - 1
		if absorb > overflow {
			absorb = overflow
		}

		b.WriteString(dir[i:start])
		switch keep := segLen - absorb; {
		case absorb <= 0:
			b.WriteString(dir[start:sep])
		case keep == 1:
			b.WriteByte(dir[start])
		default:
			b.WriteString(dir[start : start+keep-1])
			b.WriteByte('~')
		}

		overflow -= absorb
		i = sep
	}

	b.WriteString(dir[i:])
	return b.String()
}
