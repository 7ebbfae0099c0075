package rootcap

import "strings"

// Fixed resolves paths against a user-configured set of root directories.
// The longest matching root wins so nested registrations behave sensibly.
// Matching is purely lexical; no filesystem access is performed.
type Fixed struct {
	Roots []string
}

func (Fixed) Name() string { return "fixed" }

func (f Fixed) Root(path string) (string, error) {
	var best string
	for _, root := range f.Roots {
		r := strings.TrimSuffix(root, "/")
		if r == "" {
			continue
		}
		if path == r || strings.HasPrefix(path, r+"/") {
			if len(r) > len(best) {
				best = r
			}
		}
	}
	if best == "" {
		return "", nil
	}
	return withSlash(best), nil
}
