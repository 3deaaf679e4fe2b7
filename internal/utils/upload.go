package utils

import (
	"path/filepath"
	"strings"
)

// Extensions accepted for digital-book uploads.
var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".epub": true,
}

// ValidUploadName reports whether the uploaded filename carries an
// accepted extension.  The check is case-insensitive.
func ValidUploadName(name string) bool {
	return allowedUploadExts[strings.ToLower(filepath.Ext(name))]
}

// SafeFilename strips any path components from an uploaded filename so it
// cannot escape the storage directory.  Empty names become "archivo".
func SafeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSpace(strings.ReplaceAll(name, "..", "_"))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "archivo"
	}
	return name
}
