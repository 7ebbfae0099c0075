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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/labelpath/cli/internal/errors"
	"github.com/labelpath/cli/internal/logger"
	"github.com/labelpath/cli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	watchFlags     = labelFlags{limit: -1}
	watchRecursive bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [DIR]",
	Short: "Label files as they change under a directory",
	Example: `  labelpath watch              # Watch the current directory
  labelpath watch -r ./src     # Watch a tree recursively`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchFlags.limit, "limit", -1, "Length budget for directory segments (0 disables abbreviation)")
	watchCmd.Flags().StringVar(&watchFlags.prefix, "prefix", "", "Literal prefix shown before the relative path")
	watchCmd.Flags().StringSliceVar(&watchFlags.resolvers, "resolver", nil, "Root resolver order (git, markers, fixed)")
	watchCmd.Flags().BoolVarP(&watchRecursive, "recursive", "r", false, "Watch subdirectories too")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(&watchFlags)
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewError(err, "could not start filesystem watcher")
	}
	defer watcher.Close()

	if err := addWatches(watcher, dir, watchRecursive); err != nil {
		return errors.NewError(err, "could not watch "+dir)
	}

	if !quietMode {
		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (ctrl-c to stop)\n", dir)
	}

	ctx := GetContext()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			// New directories join the watch in recursive mode.
			if watchRecursive && event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					addDirWatch(watcher, event.Name)
				}
			}
			path := normalizePath(event.Name, opts.HomeDir)
			label, ok := opts.Compose(path)
			if !ok {
				label = path
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.EventRow(eventName(event.Op), label))
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", watchErr)
		}
	}
}

func addWatches(watcher *fsnotify.Watcher, dir string, recursive bool) error {
	if !recursive {
		return watcher.Add(dir)
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func addDirWatch(watcher *fsnotify.Watcher, path string) {
	if err := watcher.Add(path); err != nil {
		logger.Debug("could not watch %s: %v", path, err)
	}
}

func eventName(op fsnotify.Op) string {
	switch {
	case op&fsnotify.Create != 0:
		return "create"
	case op&fsnotify.Write != 0:
		return "write"
	case op&fsnotify.Rename != 0:
		return "rename"
	}
	return strings.ToLower(op.String())
}
