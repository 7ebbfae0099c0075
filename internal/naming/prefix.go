package naming

import (
	"strings"

	"github.com/rs/zerolog"
)

// PrefixKind discriminates the two shapes a PrefixSpec can take.
type PrefixKind int

const (
	// PrefixLiteral renders a fixed string, typically "./".
	PrefixLiteral PrefixKind = iota
	// PrefixBracket renders the root's label wrapped in open/close markers.
	PrefixBracket
)

// PrefixSpec describes the text shown before the relative path.
type PrefixSpec struct {
	Kind    PrefixKind
	Literal string
	Open    string
	Close   string
}

// LiteralPrefix returns a PrefixSpec rendering the fixed string s.
func LiteralPrefix(s string) PrefixSpec {
	return PrefixSpec{Kind: PrefixLiteral, Literal: s}
}

// BracketPrefix returns a PrefixSpec wrapping the root's label in open/close.
func BracketPrefix(open, close string) PrefixSpec {
	return PrefixSpec{Kind: PrefixBracket, Open: open, Close: close}
}

// FormatPrefix renders spec against root. For a bracket spec the label is
// looked up in abbrevs keyed by the root without its trailing separator,
// falling back to the root's basename. A malformed spec is logged and
// replaced with a safe placeholder rather than failing the caller.
func FormatPrefix(root string, spec PrefixSpec, abbrevs map[string]string, log zerolog.Logger) string {
	switch spec.Kind {
	case PrefixLiteral:
		return spec.Literal
	case PrefixBracket:
		key := strings.TrimSuffix(root, "/")
		label, ok := abbrevs[key]
		if !ok {
			label = baseName(key)
		}
		return spec.Open + label + spec.Close
	}
	log.Warn().Int("kind", int(spec.Kind)).Msg("malformed prefix spec, using placeholder")
	return "?/"
}

// baseName returns the final segment of a '/'-separated path.
func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
