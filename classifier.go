package tinymd

import (
	"strings"
	"unicode/utf8"
)

// HTML tags emitted by the classifier.
const (
	headingOpen    = "\n<h1>"
	headingClose   = "</h1>\n"
	paragraphOpen  = "<p>"
	paragraphClose = "</p>\n"

	// emptyParagraph is the fragment an empty line produces. It is never emitted.
	emptyParagraph = paragraphOpen + paragraphClose
)

// headingMarker starts a level-1 heading line.
const headingMarker = '#'

// Kind is the block type a line is classified as.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
)

// String returns the HTML element name for the kind.
func (k Kind) String() string {
	if k == KindHeading {
		return "h1"
	}
	return "p"
}

// Classify returns KindHeading for lines starting with '#', KindParagraph otherwise.
// Empty lines are paragraphs.
func Classify(line string) Kind {
	if len(line) > 0 && line[0] == headingMarker {
		return KindHeading
	}
	return KindParagraph
}

// HeadingText drops the heading marker and the character following it.
// The second character is not checked: "#Title" yields "itle". Lines shorter
// than two characters yield "".
func HeadingText(line string) string {
	if len(line) < 2 {
		return ""
	}
	_, size := utf8.DecodeRuneInString(line[1:])
	return line[1+size:]
}

// state tracks which block is open while compiling one document.
type state struct {
	paragraphOpen bool
	headingOpen   bool
}

// next builds the fragment for one line and advances the state.
// Every fragment closes the block it opens, so both flags are false on return.
func (s *state) next(line string) string {
	var b strings.Builder
	kind := Classify(line)

	if s.paragraphOpen && kind == KindHeading {
		b.WriteString(paragraphClose)
		s.paragraphOpen = false
	}
	if s.headingOpen {
		b.WriteString(headingClose)
		s.headingOpen = false
	}

	if kind == KindHeading {
		s.headingOpen = true
		b.WriteString(headingOpen)
		b.WriteString(HeadingText(line))
	} else {
		if !s.paragraphOpen {
			s.paragraphOpen = true
			b.WriteString(paragraphOpen)
		}
		b.WriteString(line)
	}

	if s.paragraphOpen {
		b.WriteString(paragraphClose)
		s.paragraphOpen = false
	}
	if s.headingOpen {
		b.WriteString(headingClose)
		s.headingOpen = false
	}

	return b.String()
}

// Compile converts lines to HTML fragments, one per line, in input order.
// Lines producing an empty paragraph are dropped, so the result may be
// shorter than lines. Content is not HTML-escaped.
func Compile(lines []string) []string {
	fragments := make([]string, 0, len(lines))
	var s state
	for _, line := range lines {
		if frag := s.next(line); frag != emptyParagraph {
			fragments = append(fragments, frag)
		}
	}
	return fragments
}

// Fragment returns the fragment for a single line compiled on its own and
// reports whether it would be emitted.
func Fragment(line string) (string, bool) {
	var s state
	frag := s.next(line)
	return frag, frag != emptyParagraph
}
