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
	"fmt"

	"github.com/labelpath/cli/internal/logger"
	"github.com/labelpath/cli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	nameFlags  = labelFlags{}
	namePlain  bool
	nameUnique bool
)

var nameCmd = &cobra.Command{
	Use:   "name FILE...",
	Short: "Compute display labels for files",
	Example: `  labelpath name src/server/handler.go
  labelpath name --limit 16 $(git ls-files '*.py')
  labelpath name --bracket --open '[' --close '] ' main.go   # [proj] main.go
  labelpath name --plain *.go                                # labels only`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName,
}

func init() {
	nameCmd.Flags().IntVar(&nameFlags.limit, "limit", -1, "Length budget for directory segments (0 disables abbreviation)")
	nameCmd.Flags().StringVar(&nameFlags.prefix, "prefix", "", "Literal prefix shown before the relative path")
	nameCmd.Flags().BoolVar(&nameFlags.bracket, "bracket", false, "Show the project name in brackets instead of a literal prefix")
	nameCmd.Flags().StringVar(&nameFlags.open, "open", "[", "Opening marker for --bracket")
	nameCmd.Flags().StringVar(&nameFlags.close, "close", "] ", "Closing marker for --bracket")
	nameCmd.Flags().StringVar(&nameFlags.fallback, "fallback", "", "Root fallback policy: default, absolute, or none")
	nameCmd.Flags().StringSliceVar(&nameFlags.resolvers, "resolver", nil, "Root resolver order (git, markers, fixed)")
	nameCmd.Flags().BoolVar(&namePlain, "plain", false, "Print labels only, one per line")
	nameCmd.Flags().BoolVar(&nameUnique, "unique", true, "Disambiguate colliding labels with numeric suffixes")
	rootCmd.AddCommand(nameCmd)
}

func runName(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(&nameFlags)
	if err != nil {
		return err
	}

	taken := make(map[string]bool, len(args))
	labels := make([]string, 0, len(args))
	paths := make([]string, 0, len(args))
	width := 0

	for _, arg := range args {
		path := normalizePath(arg, opts.HomeDir)
		label, ok := opts.Compose(path)
		if !ok {
			// Naming is best-effort: the raw path is always usable.
			logger.Debug("no label computed for %s, using raw path", path)
			label = path
		}
		if nameUnique {
			label = opts.Disambiguate(label, func(s string) bool { return taken[s] })
			taken[label] = true
		}
		labels = append(labels, label)
		paths = append(paths, path)
		if len(label) > width {
			width = len(label)
		}
	}

	for i, label := range labels {
		if namePlain {
			fmt.Fprintln(cmd.OutOrStdout(), label)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Row(label, paths[i], width))
	}
	return nil
}
