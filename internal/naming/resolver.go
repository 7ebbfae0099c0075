package naming

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Capability locates a project root for a file path. Implementations may
// perform I/O (e.g. inspecting version-control metadata) and may fail;
// failures are demoted to diagnostics by the resolver chain. An empty root
// with a nil error means "no opinion".
type Capability interface {
	Name() string
	Root(path string) (string, error)
}

// CapabilityFunc adapts a plain function to the Capability interface.
func CapabilityFunc(name string, fn func(path string) (string, error)) Capability {
	return capabilityFunc{name: name, fn: fn}
}

type capabilityFunc struct {
	name string
	fn   func(string) (string, error)
}

func (c capabilityFunc) Name() string { return c.name }

func (c capabilityFunc) Root(path string) (string, error) { return c.fn(path) }

// Fallback selects the root used when no capability produces one.
type Fallback int

const (
	// FallbackDefault uses the caller's working directory context.
	FallbackDefault Fallback = iota
	// FallbackAbsolute uses the directory portion of the path itself.
	FallbackAbsolute
	// FallbackNone yields the empty root, signalling "do not customize".
	FallbackNone
)

func (f Fallback) String() string {
	switch f {
	case FallbackDefault:
		return "default"
	case FallbackAbsolute:
		return "absolute"
	case FallbackNone:
		return "none"
	}
	return fmt.Sprintf("Fallback(%d)", int(f))
}

// ParseFallback converts a configuration string to a Fallback value.
func ParseFallback(s string) (Fallback, error) {
	switch s {
	case "default", "":
		return FallbackDefault, nil
	case "absolute":
		return FallbackAbsolute, nil
	case "none":
		return FallbackNone, nil
	}
	return FallbackDefault, fmt.Errorf("unknown fallback policy %q", s)
}

// Resolution records where a root came from.
type Resolution struct {
	// Root is the resolved project root, or "" for "do not customize".
	Root string
	// Capability is the name of the capability that produced Root, or ""
	// when the fallback policy was applied.
	Capability string
}

// Found reports whether a capability (rather than the fallback) produced the root.
func (r Resolution) Found() bool { return r.Capability != "" }

// ResolveRoot runs the capability chain for path and returns the winning root.
func ResolveRoot(path string, caps []Capability, fb Fallback, defaultDir string, log zerolog.Logger) string {
	return Resolve(path, caps, fb, defaultDir, log).Root
}

// Resolve runs each capability in order against path. The first non-empty
// result wins and resolution stops immediately. A capability error is logged
// with the capability's name and treated as "no result". If the chain is
// exhausted the fallback policy decides the root.
func Resolve(path string, caps []Capability, fb Fallback, defaultDir string, log zerolog.Logger) Resolution {
	for _, c := range caps {
		root, err := tryCapability(c, path)
		if err != nil {
			log.Warn().Str("capability", c.Name()).Err(err).Msg("root capability failed")
			continue
		}
		if root != "" {
			return Resolution{Root: root, Capability: c.Name()}
		}
	}

	switch fb {
	case FallbackAbsolute:
		return Resolution{Root: dirPortion(path)}
	case FallbackNone:
		return Resolution{}
	default:
		return Resolution{Root: defaultDir}
	}
}

// tryCapability is the fault barrier around a single capability call.
func tryCapability(c Capability, path string) (root string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("capability panicked: %v", r)
		}
	}()
	return c.Root(path)
}

// dirPortion returns path up to and including its final separator.
func dirPortion(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i+1]
	}
	return ""
}
