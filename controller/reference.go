package controller

import (
	"context"

	"github.com/samsonr/cli/errors"
	"github.com/samsonr/cli/lib/logging"
)

// ResolveReference returns reference when given, else the current git branch.
func (c *Controller) ResolveReference(ctx context.Context, reference string) (string, error) {
	if reference != "" {
		return reference, nil
	}

	if c.branches == nil {
		return "", errors.MissingReference
	}

	branch, err := c.branches.CurrentBranch(ctx)
	if err != nil {
		logging.FromContext(ctx).Info("could not read current branch", "error", err)
		return "", errors.MissingReference
	}
	if branch == "" {
		return "", errors.MissingReference
	}

	logging.FromContext(ctx).Info("deploying current branch", "reference", branch)
	return branch, nil
}
