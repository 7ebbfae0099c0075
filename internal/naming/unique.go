package naming

import "fmt"

// maxSuffix bounds the disambiguation search so a broken existence
// predicate cannot hang the caller.
const maxSuffix = 1 << 16

// Disambiguate makes candidate unique with respect to the exists predicate
// by appending " <N>" suffixes starting at N=0. If the search is exhausted
// a diagnostic is logged and the last attempted name is returned.
func (o *Options) Disambiguate(candidate string, exists func(string) bool) string {
	if !exists(candidate) {
		return candidate
	}
	name := candidate
	for n := 0; n < maxSuffix; n++ {
		name = fmt.Sprintf("%s <%d>", candidate, n)
		if !exists(name) {
			return name
		}
	}
	log := o.logger()
	log.Error().Str("candidate", candidate).
		Msg("disambiguation exhausted, returning last attempt")
	return name
}
