package naming

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguateUntakenUnchanged(t *testing.T) {
	opts := &Options{}
	taken := map[string]bool{}

	got := opts.Disambiguate("./f.txt", func(s string) bool { return taken[s] })
	assert.Equal(t, "./f.txt", got)
}

func TestDisambiguateAppendsCounter(t *testing.T) {
	opts := &Options{}
	taken := map[string]bool{
		"./f.txt":     true,
		"./f.txt <0>": true,
	}

	got := opts.Disambiguate("./f.txt", func(s string) bool { return taken[s] })
	assert.Equal(t, "./f.txt <1>", got)
}

func TestDisambiguateManyCollisions(t *testing.T) {
	opts := &Options{}
	taken := map[string]bool{"x": true}
	for n := 0; n < 100; n++ {
		taken[fmt.Sprintf("x <%d>", n)] = true
	}

	got := opts.Disambiguate("x", func(s string) bool { return taken[s] })
	assert.Equal(t, "x <100>", got)
}

func TestDisambiguateTerminatesOnPathologicalPredicate(t *testing.T) {
	opts := &Options{}

	// Everything is taken; the defensive cap must stop the search.
	got := opts.Disambiguate("x", func(string) bool { return true })
	assert.Equal(t, fmt.Sprintf("x <%d>", maxSuffix-1), got)
}
