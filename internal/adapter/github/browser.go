package github

import (
	"fmt"
	"net/url"

	"github.com/cli/browser"
)

// OpenInBrowser opens url in the user's default browser.
func OpenInBrowser(url string) error {
	if url == "" {
		return fmt.Errorf("no URL to open")
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// RepoWebURL returns the web page of a repository on the host serving
// apiBaseURL, so Enterprise installs open their own pages.
func RepoWebURL(apiBaseURL, fullName string) string {
	scheme := "https"
	if u, err := url.Parse(apiBaseURL); err == nil && u.Scheme == "http" {
		scheme = "http"
	}
	return scheme + "://" + HostFromBaseURL(apiBaseURL) + "/" + fullName
}
