package resolve

import "strings"

// absolutePrefixes are reference forms the resolver must pass through
// unchanged.
var absolutePrefixes = []string{"http://", "https://", "data:", "blob:"}

// JoinBaseURL joins a base URL and an asset path by trimming exactly one
// trailing slash from the base and exactly one leading slash from the path,
// then concatenating with a single separating slash. Three historical
// loader variants joined URLs with slightly different code; every one of
// them reduces to this rule, so it is load-bearing compatibility behavior.
func JoinBaseURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// IsAbsoluteRef reports whether ref is an absolute network, data, or blob
// reference.
func IsAbsoluteRef(ref string) bool {
	for _, prefix := range absolutePrefixes {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}
