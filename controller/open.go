package controller

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
	"github.com/samsonr/cli/constants"
	"github.com/samsonr/cli/errors"
)

// WebURL builds the address of a Samson page. Pages that need a project fail
// when projectID is zero.
func WebURL(host string, page string, projectID int) (string, error) {
	template, ok := constants.WebURLMap[page]
	if !ok {
		return "", errors.New(fmt.Sprintf("unknown page %q", page))
	}
	host = strings.TrimRight(host, "/")
	if strings.Count(template, "%") == 1 {
		return fmt.Sprintf(template, host), nil
	}
	if projectID <= 0 {
		return "", errors.MissingProjectID
	}
	return fmt.Sprintf(template, host, projectID), nil
}

// OpenInBrowser opens url in the default browser
func (c *Controller) OpenInBrowser(url string) error {
	return browser.OpenURL(url)
}
