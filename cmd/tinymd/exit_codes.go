package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-tinymd"
	"github.com/alnah/go-tinymd/internal/config"
	"github.com/alnah/go-tinymd/internal/fileutil"
	"github.com/alnah/go-tinymd/internal/hints"
)

// Exit codes for the tinymd CLI. Any failure is fatal for the run.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// exitCodeFor returns the exit code for an error.
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	return ExitFailure
}

// diagnose formats err for stderr, with a hint when one applies.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func diagnose(err error, inputPath, configName string) string {
	msg := "error: " + err.Error()

	switch {
	case errors.Is(err, os.ErrNotExist) && errors.Is(err, tinymd.ErrOpenInput):
		msg += hints.ForInputNotFound(inputPath)
	case errors.Is(err, tinymd.ErrCreateOutput):
		msg += hints.ForOutputFile()
	case errors.Is(err, tinymd.ErrMalformedLine):
		msg += hints.ForMalformedLine()
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if configName != "" && !fileutil.IsFilePath(configName) {
			searched = config.SearchPaths(configName)
		}
		msg += hints.ForConfigNotFound(searched)
	}

	return msg
}
