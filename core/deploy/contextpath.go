package deploy

import "strings"

// NormalizeContextPath returns the canonical form of a context path: "" for the root
// context, otherwise a leading slash and no trailing slash.
func NormalizeContextPath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// DisplayContextPath renders a normalized context path, showing the root as "/".
func DisplayContextPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
