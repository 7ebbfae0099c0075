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

	"github.com/labelpath/cli/internal/naming"
	"github.com/labelpath/cli/internal/ui"
	"github.com/spf13/cobra"
)

var resolveFlags = labelFlags{limit: -1}

var resolveCmd = &cobra.Command{
	Use:   "resolve FILE...",
	Short: "Show which resolver found the project root for each file",
	Example: `  labelpath resolve src/main.go
  labelpath resolve --resolver markers --resolver git src/main.go`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFlags.fallback, "fallback", "", "Root fallback policy: default, absolute, or none")
	resolveCmd.Flags().StringSliceVar(&resolveFlags.resolvers, "resolver", nil, "Root resolver order (git, markers, fixed)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(&resolveFlags)
	if err != nil {
		return err
	}

	for _, arg := range args {
		path := normalizePath(arg, opts.HomeDir)
		full := naming.ExpandHome(path, opts.HomeDir)
		res := naming.Resolve(full, opts.Resolvers, opts.Fallback, opts.DefaultDir, *opts.Log)
		fmt.Fprintln(cmd.OutOrStdout(), ui.ResolveRow(path, res.Root, res.Capability))
	}
	return nil
}
