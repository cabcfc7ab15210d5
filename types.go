package tinymd

import "time"

// Result holds the fragments compiled from a list of lines.
type Result struct {
	Fragments []string
	Elided    int // lines that produced no fragment
}

// FileResult describes one completed file conversion.
type FileResult struct {
	InputPath  string
	OutputPath string
	Lines      int
	Fragments  int
	Bytes      int64
	Duration   time.Duration
}
