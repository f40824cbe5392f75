package showref

import "strings"

// Match reports whether refName should be reported given the caller's
// patterns. A pattern matches when it is a byte-for-byte suffix of the ref
// name and either covers the whole name or begins right after a "/"
// component boundary, so "main" matches "refs/heads/main" but not
// "refs/heads/domain". An empty pattern list matches every ref. When
// includeHead is set, the name "HEAD" matches unconditionally.
func Match(refName string, patterns []string, includeHead bool) bool {
	if includeHead && refName == "HEAD" {
		return true
	}
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if len(p) > len(refName) || !strings.HasSuffix(refName, p) {
			continue
		}
		if len(p) == len(refName) {
			return true
		}
		if refName[len(refName)-len(p)-1] == '/' {
			return true
		}
	}
	return false
}
