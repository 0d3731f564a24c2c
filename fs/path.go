// Package fs provides file-based implementations for docmacros: vocabulary
// files, page sources, navigation discovery and site output.
package fs

import (
	"path"
	"strings"
)

// DestPath converts a page's output URI to the relative file path that holds
// its rendered content, using ext as the file extension.
// Example: "guide/install/" → "guide/install/index.html"
func DestPath(uri, ext string) string {
	uri = strings.TrimPrefix(uri, "/")

	// Root or trailing slash → index file in that directory
	if uri == "" || strings.HasSuffix(uri, "/") {
		return uri + "index" + ext
	}

	// Flat URLs carry their own extension
	return strings.TrimSuffix(uri, path.Ext(uri)) + ext
}
