package main

import "strings"

const (
	programName        = "tinymd"
	programDescription = "a tiny markdown to HTML compiler"
)

// buildInfo identifies the program in banners.
type buildInfo struct {
	Name        string
	Version     string
	Description string
	Authors     string
	Homepage    string
}

// title returns "<name> (v<version>), <description>".
func title(b buildInfo) string {
	return b.Name + " (v" + b.Version + "), " + b.Description
}

// shortBanner is printed before a conversion.
func shortBanner(b buildInfo) string {
	return title(b) + "\n"
}

// longBanner is printed when the program is not given exactly one file.
func longBanner(b buildInfo) string {
	var sb strings.Builder
	sb.WriteString(shortBanner(b))
	sb.WriteString("Written by: " + b.Authors + "\n")
	sb.WriteString("Homepage: " + b.Homepage + "\n")
	sb.WriteString("Usage: " + b.Name + " [markdown file].md\n")
	return sb.String()
}

// flagsHelp describes the optional flags.
func flagsHelp() string {
	return `
Flags:
  -c, --config <path>   Config file name or path
  -q, --quiet           Only show errors
  -v, --verbose         Show debug output
`
}
