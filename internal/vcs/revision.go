// Package vcs reads theme files out of a git revision, so a theme can be
// compared against an older committed version of itself without touching the
// working tree. Local repositories only.
package vcs

import (
	"fmt"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
)

// RevisionReader implements theme.FileReader against a single resolved
// commit. Paths are mapped relative to the worktree root, so include
// directives resolve within the same revision.
type RevisionReader struct {
	root   string
	rev    string
	commit *object.Commit
}

// Open resolves rev (anything git rev-parse accepts) in the repository
// containing dir.
func Open(dir, rev string) (*RevisionReader, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", hash, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("locating worktree: %w", err)
	}

	return &RevisionReader{
		root:   wt.Filesystem.Root(),
		rev:    rev,
		commit: commit,
	}, nil
}

// Revision returns the revision string this reader was opened with.
func (r *RevisionReader) Revision() string {
	return r.rev
}

// ReadFile returns the blob contents for path at the reader's revision.
func (r *RevisionReader) ReadFile(path string) ([]byte, error) {
	rel, err := repoRelative(r.root, path)
	if err != nil {
		return nil, err
	}

	f, err := r.commit.File(rel)
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", rel, r.rev, err)
	}

	contents, err := f.Contents()
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", rel, r.rev, err)
	}
	return []byte(contents), nil
}

// repoRelative maps a (possibly relative) path onto a slash-separated path
// inside the worktree root.
func repoRelative(root, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("%s is outside repository %s", path, root)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is outside repository %s", path, root)
	}
	return rel, nil
}
