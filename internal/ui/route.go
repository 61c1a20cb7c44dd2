package ui

import (
	"fmt"
	"strings"

	"github.com/yourusername/ghexplorer/internal/domain"
)

// RouteKind names one of the two screens.
type RouteKind int

const (
	RouteSearch RouteKind = iota
	RouteDetail
)

const detailPrefix = "/repository/"

// Route is a navigation target. FullName is set only for RouteDetail.
type Route struct {
	Kind     RouteKind
	FullName string
}

// SearchRoute returns the root route.
func SearchRoute() Route {
	return Route{Kind: RouteSearch}
}

// DetailRoute returns the detail route for a repository.
func DetailRoute(fullName string) Route {
	return Route{Kind: RouteDetail, FullName: fullName}
}

// String formats the route as a path: "/" or "/repository/owner/name".
func (r Route) String() string {
	if r.Kind == RouteDetail {
		return detailPrefix + r.FullName
	}
	return "/"
}

// ParseRoute accepts "/", "/repository/owner/name" or a bare "owner/name".
// Everything after the detail prefix is the repository identifier, which
// must carry both an owner and a name.
func ParseRoute(path string) (Route, error) {
	if path == "" || path == "/" {
		return SearchRoute(), nil
	}

	if rest, ok := strings.CutPrefix(path, detailPrefix); ok {
		return detailRoute(path, rest)
	}

	if !strings.HasPrefix(path, "/") {
		return detailRoute(path, path)
	}

	return Route{}, fmt.Errorf("unknown route %q", path)
}

func detailRoute(path, fullName string) (Route, error) {
	if fullName == "" {
		return Route{}, fmt.Errorf("missing repository in route %q", path)
	}
	if _, _, ok := domain.SplitFullName(fullName); !ok {
		return Route{}, fmt.Errorf("route %q needs an owner/name repository", path)
	}
	return DetailRoute(fullName), nil
}
