/*
Copyright © 2025 The labelpath authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/labelpath/cli/internal/config"
	"github.com/labelpath/cli/internal/errors"
	"github.com/labelpath/cli/internal/logger"
	"github.com/labelpath/cli/internal/naming"
	"github.com/labelpath/cli/internal/rootcap"
)

// labelFlags are the per-command overrides of the configured naming options.
// Sentinel values (-1, "") mean "use the configuration".
type labelFlags struct {
	limit     int
	prefix    string
	bracket   bool
	open      string
	close     string
	fallback  string
	resolvers []string
}

// loadOptions merges the user configuration with command-line overrides into
// the naming options for this invocation.
func loadOptions(f *labelFlags) (*naming.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.NewConfigError(err, "could not load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError(err, "invalid configuration")
	}

	prefixCfg := cfg.Prefix
	if f.prefix != "" {
		prefixCfg = config.PrefixConfig{Literal: f.prefix}
	}
	if f.bracket {
		prefixCfg = config.PrefixConfig{Bracket: true, Open: f.open, Close: f.close}
	}
	var spec naming.PrefixSpec
	if prefixCfg.Bracket {
		spec = naming.BracketPrefix(prefixCfg.Open, prefixCfg.Close)
	} else {
		literal := prefixCfg.Literal
		if literal == "" {
			literal = "./"
		}
		spec = naming.LiteralPrefix(literal)
	}

	limit := cfg.AbbrevLimit
	if f.limit >= 0 {
		limit = f.limit
	}

	fallback := cfg.Fallback
	if f.fallback != "" {
		fallback = f.fallback
	}
	fb, err := naming.ParseFallback(fallback)
	if err != nil {
		return nil, errors.NewConfigError(err, "invalid fallback policy")
	}

	resolvers := cfg.Resolvers
	if len(f.resolvers) > 0 {
		resolvers = f.resolvers
	}
	caps, err := rootcap.FromNames(resolvers, cfg.FixedRoots, cfg.MarkerFiles)
	if err != nil {
		return nil, errors.NewConfigError(err, "invalid resolver list")
	}

	cwd, _ := os.Getwd()
	home, _ := os.UserHomeDir()

	return &naming.Options{
		Resolvers:   caps,
		Fallback:    fb,
		Prefix:      spec,
		Abbrevs:     cfg.Abbrevs,
		AbbrevLimit: limit,
		DefaultDir:  ensureDirPath(filepath.ToSlash(cwd)),
		HomeDir:     filepath.ToSlash(home),
		Log:         &logger.Log,
	}, nil
}

// normalizePath makes a command argument absolute, '/'-separated, and
// contracted to the "~/" shorthand where applicable.
func normalizePath(arg, home string) string {
	abs, err := filepath.Abs(arg)
	if err != nil {
		abs = arg
	}
	return naming.ContractHome(filepath.ToSlash(abs), home)
}

// ensureDirPath normalizes a directory to trailing-slash form.
func ensureDirPath(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
