package domain

import "strings"

// RouteKind identifies the page a URL path resolves to.
type RouteKind int

const (
	RouteHome RouteKind = iota
	RouteAdmin
	RouteCV
	RouteProject
	RouteNotFound
)

func (k RouteKind) String() string {
	return [...]string{"home", "admin", "cv", "project", "not_found"}[k]
}

// Route is the parsed form of a URL path. Slug is set only for RouteProject.
type Route struct {
	Kind RouteKind
	Slug string
}

// ParseRoute maps a URL path onto a Route. Parsing is pure: it never
// consults ambient state, so dispatch can be tested in isolation.
func ParseRoute(path string) Route {
	path = strings.Trim(strings.TrimSpace(path), "/")

	switch path {
	case "":
		return Route{Kind: RouteHome}
	case "admin":
		return Route{Kind: RouteAdmin}
	case "cv":
		return Route{Kind: RouteCV}
	}

	if slug, ok := strings.CutPrefix(path, "projects/"); ok && slug != "" && !strings.Contains(slug, "/") {
		return Route{Kind: RouteProject, Slug: slug}
	}

	return Route{Kind: RouteNotFound}
}
