package utils

import (
	"strings"
)

// ResolveImageURL turns a stored meal image reference into an absolute URL.
// Absolute URLs pass through, rooted paths are joined onto the app base URL,
// and a bare filename is exposed under the conventional /images/meals/ path.
func ResolveImageURL(baseURL, stored string) string {
	if stored == "" {
		return ""
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	base := strings.TrimSuffix(baseURL, "/")
	if strings.Contains(stored, "/") {
		return base + "/" + strings.TrimPrefix(stored, "/")
	}
	return base + "/images/meals/" + stored
}
