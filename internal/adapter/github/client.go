package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/yourusername/ghexplorer/internal/domain"
	"golang.org/x/oauth2"
)

// Options configures the REST client.
type Options struct {
	BaseURL string
	Token   string // empty means anonymous
	Timeout time.Duration

	// HTTPClient overrides the transport; Token is ignored when set.
	HTTPClient *http.Client
}

// Client reads repositories and issues from the GitHub REST API.
type Client struct {
	gh     *github.Client
	logger *slog.Logger
}

// NewClient creates a REST client against opts.BaseURL.
func NewClient(ctx context.Context, opts Options, logger *slog.Logger) (*Client, error) {
	hc := opts.HTTPClient
	if hc == nil {
		if opts.Token != "" {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
			hc = oauth2.NewClient(ctx, ts)
		} else {
			hc = &http.Client{}
		}
		hc.Timeout = opts.Timeout
	}

	gh := github.NewClient(hc)

	if opts.BaseURL != "" {
		base, err := parseBaseURL(opts.BaseURL)
		if err != nil {
			return nil, err
		}
		gh.BaseURL = base
	}

	return &Client{gh: gh, logger: logger}, nil
}

// GetRepository fetches repos/{fullName}. The identifier is forwarded as-is;
// a malformed one fails remotely.
func (c *Client) GetRepository(ctx context.Context, fullName string) (*domain.RepositoryDetail, error) {
	var repo github.Repository
	if err := c.get(ctx, "repos/"+fullName, &repo); err != nil {
		return nil, fmt.Errorf("failed to get repository %s: %w", fullName, err)
	}

	detail := normalizeRepository(&repo)
	return &detail, nil
}

// ListOpenIssues fetches the first page of repos/{fullName}/issues,
// which GitHub limits to open issues by default.
func (c *Client) ListOpenIssues(ctx context.Context, fullName string) ([]domain.Issue, error) {
	var issues []*github.Issue
	if err := c.get(ctx, "repos/"+fullName+"/issues", &issues); err != nil {
		return nil, fmt.Errorf("failed to list issues for %s: %w", fullName, err)
	}

	return normalizeIssues(issues), nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := c.gh.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.gh.Do(ctx, req, v)

	attrs := []any{
		slog.String("path", path),
		slog.Duration("elapsed", time.Since(start)),
	}
	if resp != nil {
		attrs = append(attrs, slog.Int("status", resp.StatusCode))
	}
	if err != nil {
		c.logger.Warn("github request failed", append(attrs, slog.String("error", err.Error()))...)
		return err
	}

	c.logger.Debug("github request", attrs...)
	return nil
}

func normalizeRepository(r *github.Repository) domain.RepositoryDetail {
	return domain.RepositoryDetail{
		FullName:     r.GetFullName(),
		Description:  r.GetDescription(),
		Stars:        r.GetStargazersCount(),
		Forks:        r.GetForksCount(),
		IssuesOpened: r.GetOpenIssuesCount(),
		Owner: domain.Owner{
			Login:     r.GetOwner().GetLogin(),
			AvatarURL: r.GetOwner().GetAvatarURL(),
		},
	}
}

func normalizeIssues(issues []*github.Issue) []domain.Issue {
	out := make([]domain.Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, domain.Issue{
			ID:          is.GetID(),
			Title:       is.GetTitle(),
			HTMLURL:     is.GetHTMLURL(),
			AuthorLogin: is.GetUser().GetLogin(),
		})
	}
	return out
}

// parseBaseURL requires an absolute URL and adds the trailing slash go-github
// expects.
func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: must be absolute", raw)
	}

	return u, nil
}
