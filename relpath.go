package mdsite

import "strings"

// Relative paths handed to this file are root-relative, slash-separated,
// with "." denoting the source root itself.

// rootSentinel marks the root of the tree ("this directory").
const rootSentinel = "."

// parentMarker is the upward traversal segment in generated links.
const parentMarker = ".."

// homeLabel is the first entry of every breadcrumb trail.
const homeLabel = "\U0001F3E0 Home"

// Depth returns the number of path segments between rel and the root.
// The root itself ("." or "") has depth 0.
func Depth(rel string) int {
	if rel == "" || rel == rootSentinel {
		return 0
	}
	return strings.Count(rel, "/") + 1
}

// RootRelativePrefix returns the relative-path prefix navigating from a
// node at the given depth back to the tree root. Depth 0 yields ".";
// depth d > 0 yields d parent-directory markers joined by "/". The result
// depends only on depth, never on segment names.
func RootRelativePrefix(depth int) string {
	if depth <= 0 {
		return rootSentinel
	}
	parts := make([]string, depth)
	for i := range parts {
		parts[i] = parentMarker
	}
	return strings.Join(parts, "/")
}

// Breadcrumb is one entry of a page's navigation trail.
type Breadcrumb struct {
	Label string
	Href  string
}

// BreadcrumbTrail returns the navigation chain for the directory at rel,
// starting with a Home entry that resolves to the root index page. Each
// ancestor segment links to its own index page, resolved relative to the
// node's location in the output tree.
func BreadcrumbTrail(rel string) []Breadcrumb {
	depth := Depth(rel)

	trail := []Breadcrumb{{
		Label: homeLabel,
		Href:  RootRelativePrefix(depth) + "/" + indexName,
	}}
	if depth == 0 {
		return trail
	}

	segments := strings.Split(rel, "/")
	for i, segment := range segments {
		levelsUp := len(segments) - i - 1
		href := indexName
		if levelsUp > 0 {
			href = RootRelativePrefix(levelsUp) + "/" + indexName
		}
		trail = append(trail, Breadcrumb{Label: segment, Href: href})
	}
	return trail
}
