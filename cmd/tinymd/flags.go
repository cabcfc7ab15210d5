package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the optional flags. They do not count as arguments.
type cliFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
