// Package tinymd converts a tiny subset of Markdown to HTML, one line at a time.
//
// # Quick Start
//
// Compile lines already in memory:
//
//	frags := tinymd.Compile([]string{"# Title", "Hello world"})
//	// frags[0] == "\n<h1>Title</h1>\n"
//	// frags[1] == "<p>Hello world</p>\n"
//
// Or convert a file next to its source:
//
//	svc := tinymd.New()
//	res, err := svc.ConvertFile(ctx, "notes.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.OutputPath) // notes.html
//
// # Supported Syntax
//
// A line whose first character is '#' is a level-1 heading. The marker and
// the character after it are dropped, so "# Title" becomes "Title". Every
// other line is a paragraph and is copied verbatim. Empty lines produce no
// output.
//
// Text is not HTML-escaped and inline formatting is not interpreted.
// The output has no document wrapper (no <html>, <head> or <body>).
//
// # Block State
//
// The compiler tracks whether a paragraph or heading is open across lines,
// but each fragment closes the block it opens. Every fragment is therefore
// well-formed on its own.
package tinymd
