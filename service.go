package tinymd

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-tinymd/internal/fileutil"
	"github.com/alnah/go-tinymd/internal/lineio"
)

// Output paths swap the last three characters of the input path for .html.
const (
	outputExtension   = ".html"
	outputSuffixWidth = 3
)

// Service runs file conversions.
type Service struct {
	logger zerolog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for conversion diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a Service. Logging is disabled unless WithLogger is given.
func New(opts ...Option) *Service {
	s := &Service{
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OutputPath returns the HTML path for a markdown input: the last three
// characters are replaced by ".html" ("notes.md" -> "notes.html").
// Paths shorter than three characters get ".html" appended.
func OutputPath(inputPath string) string {
	return fileutil.ReplaceSuffix(inputPath, outputSuffixWidth, outputExtension)
}

// ConvertLines compiles lines without touching the filesystem.
func (s *Service) ConvertLines(lines []string) Result {
	frags := Compile(lines)
	return Result{
		Fragments: frags,
		Elided:    len(lines) - len(frags),
	}
}

// ConvertFile reads inputPath, compiles it and writes the result to
// OutputPath(inputPath), replacing any existing file.
// The context is only checked before work starts; a conversion runs to completion.
func (s *Service) ConvertFile(ctx context.Context, inputPath string) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	outputPath := OutputPath(inputPath)

	lines, err := lineio.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	res := s.ConvertLines(lines)
	s.logger.Debug().
		Int("lines", len(lines)).
		Int("fragments", len(res.Fragments)).
		Int("elided", res.Elided).
		Msg("compiled")

	n, err := lineio.WriteFile(outputPath, res.Fragments)
	if err != nil {
		return nil, err
	}

	return &FileResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Lines:      len(lines),
		Fragments:  len(res.Fragments),
		Bytes:      n,
		Duration:   s.now().Sub(start),
	}, nil
}
