package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/samsonr/cli/errors"
)

// detachedHead is what rev-parse --abbrev-ref prints when no branch is checked out.
const detachedHead = "HEAD"

var NoBranch = errors.New("no branch checked out")

// BranchReader knows the name of the currently checked out branch.
type BranchReader interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// Repo is a git working copy on disk.
type Repo struct {
	Path string
}

func New(path string) *Repo {
	return &Repo{Path: path}
}

func execGit(ctx context.Context, path string, cmd ...string) ([]byte, error) {
	args := []string{}
	args = append(args, "-C", path)
	args = append(args, cmd...)
	gitCmd := exec.CommandContext(ctx, "git", args...)
	return gitCmd.Output()
}

func IsRepo(ctx context.Context, path string) bool {
	_, err := execGit(ctx, path, "rev-parse", "--git-dir")
	return err == nil
}

// CurrentBranch returns the abbreviated name of HEAD. Empty output and a
// detached HEAD are reported as NoBranch.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := execGit(ctx, r.Path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", errors.Wrap(err, "git rev-parse")
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" || branch == detachedHead {
		return "", NoBranch
	}
	return branch, nil
}
