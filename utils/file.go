package utils

import (
	"path/filepath"
	"strings"
)

// AllowedFile reports whether the filename has an extension in the allowed
// set. Only PDF uploads are accepted.
func AllowedFile(filename string) bool {
	if !strings.Contains(filename, ".") {
		return false
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext == "pdf"
}

// SanitizeFilename strips any path components from a client-supplied
// filename and replaces characters outside a safe set, so the result can
// be joined under the upload directory without traversal risk.
func SanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, base)
	base = strings.Trim(base, ".")
	if base == "" {
		base = "upload"
	}
	return base
}
