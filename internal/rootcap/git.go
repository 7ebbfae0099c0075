// Package rootcap provides the built-in project root capabilities wired
// into the naming resolver chain: git metadata, project marker files, and
// user-configured fixed roots.
package rootcap

import (
	"os"
	"path/filepath"
	"strings"
)

// Git locates the enclosing git repository root by walking upward from the
// path. Both standard repositories (.git directory) and linked worktrees or
// submodules (.git file with a gitdir pointer) are recognized.
type Git struct{}

func (Git) Name() string { return "git" }

func (Git) Root(path string) (string, error) {
	dir := startDir(path)
	if dir == "" {
		return "", nil
	}

	for {
		gitPath := filepath.Join(dir, ".git")
		info, err := os.Stat(gitPath)
		if err == nil {
			if info.IsDir() {
				return withSlash(dir), nil
			}
			if info.Mode().IsRegular() {
				if root := gitFileRoot(gitPath); root != "" {
					return withSlash(root), nil
				}
				// Unparseable gitfile: the directory holding it is
				// still a usable boundary.
				return withSlash(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// startDir returns the directory the upward walk begins in: the path itself
// when it is a directory, otherwise its parent.
func startDir(path string) string {
	if path == "" {
		return ""
	}
	cleaned := filepath.Clean(path)
	if info, err := os.Stat(cleaned); err == nil && info.IsDir() {
		return cleaned
	}
	if !strings.ContainsRune(cleaned, '/') {
		return ""
	}
	return filepath.Dir(cleaned)
}

// gitFileRoot resolves a .git gitfile to the repository root it belongs to.
func gitFileRoot(gitFilePath string) string {
	gitDir := gitDirPointer(gitFilePath)
	if gitDir == "" {
		return ""
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Clean(filepath.Join(filepath.Dir(gitFilePath), gitDir))
	}

	if common := commonDir(gitDir); common != "" && filepath.Base(common) == ".git" {
		return filepath.Dir(common)
	}

	// Linked worktrees keep their state under <root>/.git/worktrees/<name>.
	marker := "/.git/worktrees/"
	if root, _, found := strings.Cut(gitDir, marker); found && root != "" {
		return filepath.Clean(root)
	}

	return ""
}

// gitDirPointer reads the "gitdir:" line from a .git file.
func gitDirPointer(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		const prefix = "gitdir:"
		if strings.HasPrefix(strings.ToLower(line), prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}
	return ""
}

// commonDir resolves the commondir indirection of a linked worktree git dir.
func commonDir(gitDir string) string {
	b, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		return ""
	}
	common := strings.TrimSpace(string(b))
	if common == "" {
		return ""
	}
	if !filepath.IsAbs(common) {
		common = filepath.Clean(filepath.Join(gitDir, common))
	}
	return common
}

// withSlash normalizes a root to directory-path form.
func withSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
