// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns a library name or canonical identifier into
// fetched documentation, resolving names through the search endpoint
// when needed.
package resolve

import "regexp"

// identifierPattern matches canonical library identifiers: a leading
// slash followed by two non-empty path segments, with an optional
// version or path suffix ("/facebook/react", "/vercel/next.js/v14.3.0").
var identifierPattern = regexp.MustCompile(`^/[^/]+/[^/]+`)

// IsIdentifier reports whether token is already a canonical library
// identifier. Anything else, including "" and a bare "/", is a
// free-text name that needs resolution; a name that matches nothing
// simply fails downstream with no results.
func IsIdentifier(token string) bool {
	return identifierPattern.MatchString(token)
}
