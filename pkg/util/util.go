package util

import "strings"

// BuildURL joins a configured base URL with a resource path. The join is
// trailing-slash-safe on both sides, and when appendJSON is set the
// ".json" resource suffix is appended unless the path already carries
// it. Query parameters are never part of the resource path and are
// attached by the caller.
func BuildURL(base string, appendJSON bool, resource string) string {
	url := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(resource, "/")
	if appendJSON && !strings.HasSuffix(url, ".json") {
		url += ".json"
	}
	return url
}
