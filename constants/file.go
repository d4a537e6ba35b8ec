package constants

import "strings"

// AllowedExtensions holds the upload file types the model backend accepts.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"txt":  {},
	"md":   {},
}

// mimeByExt maps an extension to the MIME type sent to the model when the
// client did not set one on the upload part.
var mimeByExt = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"txt":  "text/plain",
	"md":   "text/markdown",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether the extension is accepted for upload.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// MIMEForExt returns the fallback MIME type for an extension, or
// application/octet-stream when the extension is unknown.
func MIMEForExt(ext string) string {
	if m, ok := mimeByExt[NormalizeExt(ext)]; ok {
		return m
	}
	return "application/octet-stream"
}
