package model

import (
	"net/url"
	"strings"
)

// AssetURL turns a catalog image path into a relative, percent-encoded reference.
func AssetURL(image string) string {
	relative := strings.TrimPrefix(image, "/")
	return (&url.URL{Path: relative}).EscapedPath()
}
