package tinymd

import "github.com/alnah/go-tinymd/internal/lineio"

// Sentinel errors for file conversion.
var (
	ErrOpenInput     = lineio.ErrOpenInput
	ErrCreateOutput  = lineio.ErrCreateOutput
	ErrMalformedLine = lineio.ErrMalformedLine
)
