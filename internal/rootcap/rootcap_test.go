package rootcap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMkdirAll(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGitRootStandardRepo(t *testing.T) {
	tmp := t.TempDir()
	repo := filepath.Join(tmp, "my-app")
	sub := filepath.Join(repo, "internal", "sync")
	mustMkdirAll(t, filepath.Join(repo, ".git"))
	mustMkdirAll(t, sub)
	mustWriteFile(t, filepath.Join(sub, "main.go"), "package sync\n")

	root, err := Git{}.Root(filepath.Join(sub, "main.go"))
	require.NoError(t, err)
	assert.Equal(t, repo+"/", root)
}

func TestGitRootLinkedWorktree(t *testing.T) {
	tmp := t.TempDir()
	mainRepo := filepath.Join(tmp, "app")
	worktree := filepath.Join(tmp, "app-feature")
	worktreeGitDir := filepath.Join(mainRepo, ".git", "worktrees", "feature")

	mustMkdirAll(t, filepath.Join(mainRepo, ".git"))
	mustMkdirAll(t, worktreeGitDir)
	mustMkdirAll(t, worktree)
	mustWriteFile(t, filepath.Join(worktree, ".git"), "gitdir: "+worktreeGitDir+"\n")
	mustWriteFile(t, filepath.Join(worktreeGitDir, "commondir"), "../..\n")

	root, err := Git{}.Root(worktree)
	require.NoError(t, err)
	assert.Equal(t, mainRepo+"/", root)
}

func TestGitRootWorktreeWithoutCommondir(t *testing.T) {
	tmp := t.TempDir()
	mainRepo := filepath.Join(tmp, "app")
	worktree := filepath.Join(tmp, "app-exp")
	worktreeGitDir := filepath.Join(mainRepo, ".git", "worktrees", "exp")

	mustMkdirAll(t, filepath.Join(mainRepo, ".git"))
	mustMkdirAll(t, worktreeGitDir)
	mustMkdirAll(t, worktree)
	mustWriteFile(t, filepath.Join(worktree, ".git"), "gitdir: "+worktreeGitDir+"\n")

	root, err := Git{}.Root(worktree)
	require.NoError(t, err)
	assert.Equal(t, mainRepo+"/", root)
}

func TestGitRootNoRepo(t *testing.T) {
	tmp := t.TempDir()
	sub := filepath.Join(tmp, "plain")
	mustMkdirAll(t, sub)

	root, err := Git{}.Root(sub)
	require.NoError(t, err)
	assert.Empty(t, root)
}

func TestMarkersRoot(t *testing.T) {
	tmp := t.TempDir()
	proj := filepath.Join(tmp, "svc")
	sub := filepath.Join(proj, "internal", "db")
	mustMkdirAll(t, sub)
	mustWriteFile(t, filepath.Join(proj, "go.mod"), "module svc\n")

	root, err := Markers{}.Root(filepath.Join(sub, "db.go"))
	require.NoError(t, err)
	assert.Equal(t, proj+"/", root)
}

func TestMarkersCustomList(t *testing.T) {
	tmp := t.TempDir()
	proj := filepath.Join(tmp, "svc")
	mustMkdirAll(t, proj)
	mustWriteFile(t, filepath.Join(proj, ".root-here"), "")

	m := Markers{Files: []string{".root-here"}}
	root, err := m.Root(proj)
	require.NoError(t, err)
	assert.Equal(t, proj+"/", root)

	// The default list must not match the custom marker setup.
	root, err = Markers{}.Root(proj)
	require.NoError(t, err)
	assert.Empty(t, root)
}

func TestFixedLongestPrefixWins(t *testing.T) {
	f := Fixed{Roots: []string{"/work", "/work/app/"}}

	root, err := f.Root("/work/app/src/main.go")
	require.NoError(t, err)
	assert.Equal(t, "/work/app/", root)

	root, err = f.Root("/work/other/x.txt")
	require.NoError(t, err)
	assert.Equal(t, "/work/", root)

	root, err = f.Root("/elsewhere/x.txt")
	require.NoError(t, err)
	assert.Empty(t, root)
}

func TestFixedNoFalseBoundaryMatch(t *testing.T) {
	f := Fixed{Roots: []string{"/work/app"}}

	root, err := f.Root("/work/application/x.txt")
	require.NoError(t, err)
	assert.Empty(t, root, "prefix match must respect segment boundaries")
}

func TestFromNames(t *testing.T) {
	caps, err := FromNames([]string{"git", "markers", "fixed"}, []string{"/w"}, nil)
	require.NoError(t, err)
	require.Len(t, caps, 3)
	assert.Equal(t, "git", caps[0].Name())
	assert.Equal(t, "markers", caps[1].Name())
	assert.Equal(t, "fixed", caps[2].Name())

	_, err = FromNames([]string{"svn-remote"}, nil, nil)
	assert.Error(t, err)
}

func TestFromNamesDefaultOrder(t *testing.T) {
	caps, err := FromNames(nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, caps, len(Names))
	for i, name := range Names {
		assert.Equal(t, name, caps[i].Name())
	}
}
