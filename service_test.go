package tinymd

// Notes:
// - ConvertFile does not honor cancellation mid-run; only the pre-flight check is tested.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// ---------------------------------------------------------------------------
// TestOutputPath - Destination naming
// ---------------------------------------------------------------------------

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"notes.md", "notes.html"},
		{"dir/sub/readme.md", "dir/sub/readme.html"},
		{"notes.txt", "notes..html"},
		{"a", "a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := OutputPath(tt.input); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestService_ConvertLines - In-memory conversion
// ---------------------------------------------------------------------------

func TestService_ConvertLines(t *testing.T) {
	t.Parallel()

	svc := New()
	res := svc.ConvertLines([]string{"# Title", "Hello world", "", "# Next"})

	if len(res.Fragments) != 3 {
		t.Fatalf("got %d fragments, want 3", len(res.Fragments))
	}
	if res.Elided != 1 {
		t.Errorf("Elided = %d, want 1", res.Elided)
	}
}

// ---------------------------------------------------------------------------
// TestService_ConvertFile - File conversion
// ---------------------------------------------------------------------------

func TestService_ConvertFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		content       string
		wantHTML      string
		wantLines     int
		wantFragments int
	}{
		{
			name:          "heading and paragraph",
			content:       "# Title\nHello world\n\n# Next\n",
			wantHTML:      "\n<h1>Title</h1>\n<p>Hello world</p>\n\n<h1>Next</h1>\n",
			wantLines:     4,
			wantFragments: 3,
		},
		{
			name:          "plain text without trailing newline",
			content:       "plain text",
			wantHTML:      "<p>plain text</p>\n",
			wantLines:     1,
			wantFragments: 1,
		},
		{
			name:          "empty file",
			content:       "",
			wantHTML:      "",
			wantLines:     0,
			wantFragments: 0,
		},
		{
			name:          "CRLF input",
			content:       "# Title\r\nbody\r\n",
			wantHTML:      "\n<h1>Title</h1>\n<p>body</p>\n",
			wantLines:     2,
			wantFragments: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := filepath.Join(t.TempDir(), "doc.md")
			if err := os.WriteFile(input, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			res, err := New().ConvertFile(context.Background(), input)
			if err != nil {
				t.Fatalf("ConvertFile error: %v", err)
			}

			wantOut := strings.TrimSuffix(input, ".md") + ".html"
			if res.OutputPath != wantOut {
				t.Errorf("OutputPath = %q, want %q", res.OutputPath, wantOut)
			}
			if res.InputPath != input {
				t.Errorf("InputPath = %q, want %q", res.InputPath, input)
			}
			if res.Lines != tt.wantLines || res.Fragments != tt.wantFragments {
				t.Errorf("Lines, Fragments = %d, %d; want %d, %d", res.Lines, res.Fragments, tt.wantLines, tt.wantFragments)
			}
			if res.Bytes != int64(len(tt.wantHTML)) {
				t.Errorf("Bytes = %d, want %d", res.Bytes, len(tt.wantHTML))
			}

			got, err := os.ReadFile(wantOut)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			if string(got) != tt.wantHTML {
				t.Errorf("output = %q, want %q", got, tt.wantHTML)
			}
		})
	}
}

func TestService_ConvertFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := New().ConvertFile(context.Background(), filepath.Join(dir, "missing.md"))
		if !errors.Is(err, ErrOpenInput) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want ErrOpenInput and os.ErrNotExist", err)
		}
		if _, statErr := os.Stat(filepath.Join(dir, "missing.html")); !os.IsNotExist(statErr) {
			t.Error("no output file should be created when input is missing")
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()

		input := filepath.Join(t.TempDir(), "bad.md")
		if err := os.WriteFile(input, []byte("ok\n\xff\xfe\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := New().ConvertFile(context.Background(), input)
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("error = %v, want ErrMalformedLine", err)
		}
	})

	t.Run("output not writable", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(input, []byte("text"), 0o600); err != nil {
			t.Fatal(err)
		}
		// A directory in the way of the output file
		if err := os.Mkdir(filepath.Join(dir, "doc.html"), 0o750); err != nil {
			t.Fatal(err)
		}

		_, err := New().ConvertFile(context.Background(), input)
		if !errors.Is(err, ErrCreateOutput) {
			t.Errorf("error = %v, want ErrCreateOutput", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New().ConvertFile(ctx, "unused.md")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestService_Options - Functional options
// ---------------------------------------------------------------------------

func TestService_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	input := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(input, []byte("# A\n\nb\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := New(WithLogger(logger)).ConvertFile(context.Background(), input); err != nil {
		t.Fatalf("ConvertFile error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"message":"compiled"`, `"lines":3`, `"fragments":2`, `"elided":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %s", out, want)
		}
	}
}

func TestService_Duration(t *testing.T) {
	t.Parallel()

	input := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(input, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	svc := New()
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}

	res, err := svc.ConvertFile(context.Background(), input)
	if err != nil {
		t.Fatalf("ConvertFile error: %v", err)
	}
	if res.Duration != time.Millisecond {
		t.Errorf("Duration = %v, want 1ms", res.Duration)
	}
}
