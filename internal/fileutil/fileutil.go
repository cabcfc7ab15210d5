// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// markdownExtensions lists extensions recognized as markdown sources.
var markdownExtensions = []string{".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReplaceSuffix drops the last n characters of path and appends suffix.
// A path shorter than n characters keeps its content and gets suffix appended.
//
// Examples:
//   - ("notes.md", 3, ".html") -> "notes.html"
//   - ("notes.txt", 3, ".html") -> "notes..html"
//   - (".md", 3, ".html") -> ".html"
//   - ("ab", 3, ".html") -> "ab.html"
func ReplaceSuffix(path string, n int, suffix string) string {
	if n <= 0 || utf8.RuneCountInString(path) < n {
		return path + suffix
	}
	cut := len(path)
	for range n {
		_, size := utf8.DecodeLastRuneInString(path[:cut])
		cut -= size
	}
	return path[:cut] + suffix
}

// IsMarkdown returns true if path has a markdown extension (case-insensitive).
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range markdownExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "tinymd" -> false (name)
//   - "./tinymd.yaml" -> true (relative path)
//   - "/etc/tinymd.yaml" -> true (absolute)
//   - "C:\config\tinymd.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
