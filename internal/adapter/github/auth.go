package github

import (
	"net/url"
	"os"

	"github.com/cli/go-gh/v2/pkg/auth"
)

// TokenSource indicates where the token was found
type TokenSource string

const (
	TokenSourceFlag      TokenSource = "flag"
	TokenSourceConfig    TokenSource = "config"
	TokenSourceEnvGitHub TokenSource = "GITHUB_TOKEN"
	TokenSourceEnvGH     TokenSource = "GH_TOKEN"
	TokenSourceGHCLI     TokenSource = "gh-cli"
	TokenSourceNone      TokenSource = "none"
)

// ResolveToken finds an existing token for the API host. No token is not an
// error: requests are then made anonymously.
// Priority order:
//  1. flagToken (explicit --token flag)
//  2. configToken (config file or GHX_TOKEN)
//  3. GITHUB_TOKEN environment variable
//  4. GH_TOKEN environment variable
//  5. gh CLI auth for the host
func ResolveToken(flagToken, configToken, apiBaseURL string) (string, TokenSource) {
	if flagToken != "" {
		return flagToken, TokenSourceFlag
	}

	if configToken != "" {
		return configToken, TokenSourceConfig
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, TokenSourceEnvGitHub
	}

	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token, TokenSourceEnvGH
	}

	if token, _ := auth.TokenForHost(HostFromBaseURL(apiBaseURL)); token != "" {
		return token, TokenSourceGHCLI
	}

	return "", TokenSourceNone
}

// HostFromBaseURL maps an API base URL to the host gh stores credentials
// under. The public API host maps to github.com.
func HostFromBaseURL(apiBaseURL string) string {
	u, err := url.Parse(apiBaseURL)
	if err != nil || u.Host == "" {
		return "github.com"
	}
	if u.Host == "api.github.com" {
		return "github.com"
	}
	return u.Hostname()
}
