package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRoot(root string) Capability {
	return CapabilityFunc("fixed", func(string) (string, error) {
		return root, nil
	})
}

func TestComposeEndToEnd(t *testing.T) {
	opts := &Options{
		Resolvers:   []Capability{fixedRoot("/home/u/proj")},
		Prefix:      LiteralPrefix("./"),
		AbbrevLimit: 16,
		HomeDir:     "/home/u",
	}

	name, ok := opts.Compose("/home/u/proj/scripts/presets/keyconfig/keymap_data/keymap_default.py")
	require.True(t, ok)
	assert.Equal(t, "./s/p/k/keymap_d~/keymap_default.py", name)
}

func TestComposeFilenameNeverAbbreviated(t *testing.T) {
	opts := &Options{
		Resolvers:   []Capability{fixedRoot("/home/u/proj")},
		Prefix:      LiteralPrefix("./"),
		AbbrevLimit: 1,
		HomeDir:     "/home/u",
	}

	name, ok := opts.Compose("/home/u/proj/scripts/presets/keymap_default.py")
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(name, "/keymap_default.py"))
}

func TestComposeNoAbbreviationWhenLimitZero(t *testing.T) {
	opts := &Options{
		Resolvers: []Capability{fixedRoot("/home/u/proj")},
		Prefix:    LiteralPrefix("./"),
	}

	name, ok := opts.Compose("/home/u/proj/scripts/presets/keymap_default.py")
	require.True(t, ok)
	assert.Equal(t, "./scripts/presets/keymap_default.py", name)
}

func TestComposeAscentHomeCorrection(t *testing.T) {
	opts := &Options{
		Resolvers: []Capability{fixedRoot("/x/y/")},
		Prefix:    LiteralPrefix("./"),
		HomeDir:   "/home/u",
	}

	name, ok := opts.Compose("~/notes/todo.txt")
	require.True(t, ok)
	assert.Equal(t, "~/notes/todo.txt", name)
	assert.False(t, strings.Contains(name, ".."))
}

func TestComposeAscentAbsoluteSuffixCorrection(t *testing.T) {
	opts := &Options{
		Resolvers: []Capability{fixedRoot("/x/y/")},
		Prefix:    LiteralPrefix("./"),
	}

	// The relative form ../../a/b/c.txt ends in the absolute path, meaning
	// the ascent walked back to the filesystem root.
	name, ok := opts.Compose("/a/b/c.txt")
	require.True(t, ok)
	assert.Equal(t, "/a/b/c.txt", name)
	assert.False(t, strings.HasPrefix(name, ".."))
}

func TestComposeAscentNoCorrectionApplies(t *testing.T) {
	opts := &Options{
		Resolvers: []Capability{fixedRoot("/x/y/")},
		Prefix:    LiteralPrefix("./"),
	}

	// Sibling of the root: neither the home-shorthand nor the suffix
	// correction fires, so the ascending form is kept.
	name, ok := opts.Compose("/x/z/f.txt")
	require.True(t, ok)
	assert.Equal(t, "./../z/f.txt", name)
}

func TestComposeHomeRoot(t *testing.T) {
	opts := &Options{
		Resolvers:   []Capability{fixedRoot("~/")},
		Prefix:      LiteralPrefix("./"),
		HomeDir:     "/home/u",
		AbbrevLimit: 6,
	}

	name, ok := opts.Compose("~/proj/src/main.go")
	require.True(t, ok)
	assert.Equal(t, "~/p/src/main.go", name)
}

func TestComposeBracketPrefix(t *testing.T) {
	opts := &Options{
		Resolvers: []Capability{fixedRoot("/home/u/proj/")},
		Prefix:    BracketPrefix("[", "] "),
		Abbrevs:   map[string]string{"/home/u/proj": "pj"},
	}

	name, ok := opts.Compose("/home/u/proj/src/main.go")
	require.True(t, ok)
	assert.Equal(t, "[pj] src/main.go", name)
}

func TestComposeNoCustomization(t *testing.T) {
	opts := &Options{
		Fallback: FallbackNone,
		Prefix:   LiteralPrefix("./"),
	}

	name, ok := opts.Compose("/a/b/c.txt")
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestComposeFallbackAbsolute(t *testing.T) {
	opts := &Options{
		Fallback: FallbackAbsolute,
		Prefix:   LiteralPrefix("./"),
	}

	name, ok := opts.Compose("/a/b/c.txt")
	require.True(t, ok)
	assert.Equal(t, "./c.txt", name)
}

func TestComposeResolversSeeExpandedPath(t *testing.T) {
	var seen string
	probe := CapabilityFunc("probe", func(path string) (string, error) {
		seen = path
		return "/home/u/proj", nil
	})
	opts := &Options{
		Resolvers: []Capability{probe},
		Prefix:    LiteralPrefix("./"),
		HomeDir:   "/home/u",
	}

	_, ok := opts.Compose("~/proj/src/main.go")
	require.True(t, ok)
	assert.Equal(t, "/home/u/proj/src/main.go", seen,
		"capabilities stat the disk and need the expanded path")
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		path, home, want string
	}{
		{"~/notes/x.txt", "/home/u", "/home/u/notes/x.txt"},
		{"~", "/home/u", "/home/u"},
		{"~/", "/home/u", "/home/u"},
		{"/etc/hosts", "/home/u", "/etc/hosts"},
		{"~/x.txt", "", "~/x.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandHome(tt.path, tt.home), "path %q home %q", tt.path, tt.home)
	}
}

func TestContractHome(t *testing.T) {
	tests := []struct {
		path, home, want string
	}{
		{"/home/u/notes/x.txt", "/home/u", "~/notes/x.txt"},
		{"/home/u", "/home/u", "~"},
		{"/home/unrelated/x.txt", "/home/u", "/home/unrelated/x.txt"},
		{"/etc/hosts", "/home/u", "/etc/hosts"},
		{"/home/u/x.txt", "", "/home/u/x.txt"},
		{"/home/u/x.txt", "/home/u/", "~/x.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContractHome(tt.path, tt.home), "path %q home %q", tt.path, tt.home)
	}
}
