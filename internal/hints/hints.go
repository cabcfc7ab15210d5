// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-tinymd/internal/fileutil"
)

// ForInputNotFound returns hints for a missing input file.
// Suggests the .md variant when the user left the extension off.
func ForInputNotFound(path string) string {
	if !fileutil.IsMarkdown(path) && fileutil.FileExists(path+".md") {
		return format("did you mean " + path + ".md?")
	}
	return format("check the path; usage: tinymd [markdown file].md")
}

// ForOutputFile returns hints for output file creation errors.
func ForOutputFile() string {
	return format("check parent directory exists and is writable")
}

// ForMalformedLine returns hints for undecodable input.
func ForMalformedLine() string {
	return format("input must be UTF-8 text")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-tinymd/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-tinymd") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
