package domain

import "strings"

// Owner identifies the account that owns a repository.
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarURL"`
}

// SearchHistoryEntry is a repository the user has searched for.
// The JSON shape is the persisted format and must not change.
type SearchHistoryEntry struct {
	FullName    string `json:"fullName"`
	Description string `json:"description"`
	Owner       Owner  `json:"owner"`
}

// RepositoryDetail holds the metadata shown on the detail screen.
type RepositoryDetail struct {
	FullName     string `json:"fullName"`
	Description  string `json:"description"`
	Stars        int    `json:"stars"`
	Forks        int    `json:"forks"`
	IssuesOpened int    `json:"issuesOpened"`
	Owner        Owner  `json:"owner"`
}

// HistoryEntry returns the persisted subset of the detail.
func (r *RepositoryDetail) HistoryEntry() SearchHistoryEntry {
	return SearchHistoryEntry{
		FullName:    r.FullName,
		Description: r.Description,
		Owner:       r.Owner,
	}
}

// Issue is a single open issue of a repository.
type Issue struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	HTMLURL     string `json:"htmlUrl"`
	AuthorLogin string `json:"authorLogin"`
}

// SplitFullName splits "owner/name" into its parts.
// ok is false when either part is missing.
func SplitFullName(fullName string) (owner, name string, ok bool) {
	owner, name, found := strings.Cut(fullName, "/")
	if !found || owner == "" || name == "" {
		return "", "", false
	}
	return owner, name, true
}
