// Package naming computes short display labels for file paths: a prefix
// derived from a detected project root, a root-relative body, byte-precise
// abbreviation of the body's directory segments, and numeric disambiguation
// of colliding labels.
package naming

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// homePrefix is the two-character home-directory shorthand.
const homePrefix = "~/"

// Options carries the read-only configuration for one naming request.
// The zero value composes nothing useful; callers populate it from their
// configuration surface. Options are never mutated by the core.
type Options struct {
	// Resolvers is the ordered root capability chain.
	Resolvers []Capability
	// Fallback applies when no capability produces a root.
	Fallback Fallback
	// Prefix describes the text shown before the relative body.
	Prefix PrefixSpec
	// Abbrevs maps roots (without trailing slash) to short labels for
	// bracketed prefixes.
	Abbrevs map[string]string
	// AbbrevLimit is the length budget for the body's directory portion.
	// Zero disables abbreviation.
	AbbrevLimit int
	// DefaultDir is the caller's working directory context, used by
	// FallbackDefault.
	DefaultDir string
	// HomeDir expands the "~/" shorthand. Empty leaves "~" untouched.
	HomeDir string
	// Log receives diagnostics. Nil discards them.
	Log *zerolog.Logger
}

func (o *Options) logger() zerolog.Logger {
	if o.Log != nil {
		return *o.Log
	}
	return zerolog.Nop()
}

// Compose computes the display name for path. ok is false when the root
// resolution says "do not customize" or an internal fault was contained;
// the caller then uses the raw path unchanged. Faults never propagate:
// they are recovered here and reported through the diagnostic logger.
func (o *Options) Compose(path string) (name string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log := o.logger()
			log.Error().Str("path", path).Interface("panic", r).
				Msg("display name composition failed")
			name, ok = "", false
		}
	}()

	// Capabilities stat the filesystem, so they get the expanded form even
	// when the caller supplied the "~/" shorthand.
	root := ResolveRoot(o.expandHome(path), o.Resolvers, o.Fallback, o.DefaultDir, o.logger())
	if root == "" {
		return "", false
	}

	rel, err := o.relativeTo(root, path)
	if err != nil {
		log := o.logger()
		log.Warn().Str("path", path).Str("root", root).Err(err).
			Msg("relative path computation failed")
		return "", false
	}

	var prefix, body string
	switch {
	case strings.HasPrefix(rel, "../"):
		// The naive relative form ascends out of the root, so the root
		// likely does not relate to this file.
		switch {
		case strings.HasPrefix(path, homePrefix):
			prefix, body = path[:len(homePrefix)], path[len(homePrefix):]
		case strings.HasSuffix(rel, path):
			// The ascent walked back to the filesystem root; show the
			// absolute path instead.
			i := 0
			for i < len(path) && path[i] == '/' {
				i++
			}
			prefix, body = path[:i], path[i:]
		default:
			prefix, body = o.formatPrefix(root), rel
		}
	case root == homePrefix:
		prefix, body = root, rel
	default:
		prefix, body = o.formatPrefix(root), rel
	}

	if o.AbbrevLimit > 0 {
		// Only the directory portion is subject to the budget; the
		// filename is never altered.
		if i := strings.LastIndexByte(body, '/'); i >= 0 {
			dir, file := body[:i+1], body[i+1:]
			if len(dir) > o.AbbrevLimit {
				body = Abbreviate(dir, o.AbbrevLimit) + file
			}
		}
	}

	return prefix + body, true
}

func (o *Options) formatPrefix(root string) string {
	return FormatPrefix(root, o.Prefix, o.Abbrevs, o.logger())
}

// relativeTo computes the shortest relative form of path with respect to
// root, in '/'-separated form. Home shorthands are expanded first so both
// sides are comparable.
func (o *Options) relativeTo(root, path string) (string, error) {
	rel, err := filepath.Rel(o.expandHome(root), o.expandHome(path))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func (o *Options) expandHome(p string) string {
	return ExpandHome(p, o.HomeDir)
}

// ExpandHome rewrites the "~/" shorthand to an absolute path under home.
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" || strings.HasPrefix(path, homePrefix) {
		return filepath.Join(home, path[1:])
	}
	return path
}

// ContractHome rewrites an absolute path under home to its "~/" shorthand.
func ContractHome(path, home string) string {
	if home == "" {
		return path
	}
	home = strings.TrimSuffix(home, "/")
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}
