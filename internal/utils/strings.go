package utils

import (
	"path/filepath"
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SafeFilenamePart strips directories and characters that do not belong in
// a stored file name. Empty input becomes "NA".
func SafeFilenamePart(s string) string {
	s = filepath.Base(strings.TrimSpace(strings.ReplaceAll(s, "\\", "/")))
	if s == "." || s == "/" || s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	s = strings.TrimLeft(s, ".")
	if s == "" {
		return "NA"
	}
	if len(s) > 80 {
		ext := filepath.Ext(s)
		if len(ext) > 10 {
			ext = ""
		}
		s = s[:80-len(ext)] + ext
	}
	return s
}
