package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-tinymd"
	"github.com/alnah/go-tinymd/internal/logging"
)

// requiredArgs is the number of positional arguments that triggers a conversion.
const requiredArgs = 1

// runMain runs the CLI with os.Args-style args and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(env.Stdout, longBanner(env.Build)+flagsHelp())
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		fmt.Fprint(env.Stderr, longBanner(env.Build))
		return ExitFailure
	}

	if len(positional) != requiredArgs {
		fmt.Fprint(env.Stdout, longBanner(env.Build))
		return ExitSuccess
	}

	envCfg := loadEnvConfig()
	configName := flags.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		fmt.Fprintln(env.Stderr, diagnose(fmt.Errorf("loading config: %w", err), "", configName))
		return ExitFailure
	}

	logOpts := logging.FromConfig(cfg)
	logOpts.NoColor = noColor(env.Stderr)
	logger, err := logging.New(env.Stderr, logOpts)
	if err != nil {
		fmt.Fprintln(env.Stderr, diagnose(err, "", configName))
		return ExitFailure
	}
	warnUnknownEnvVars(logger)

	undo := configureMaxProcs(logger)
	defer undo()

	inputPath := positional[0]
	err = convert(context.Background(), inputPath, env, logger)
	if err != nil {
		fmt.Fprintln(env.Stderr, diagnose(err, inputPath, configName))
	}
	return exitCodeFor(err)
}

// convert prints the short banner and converts one file.
func convert(ctx context.Context, inputPath string, env *Environment, logger zerolog.Logger) error {
	fmt.Fprint(env.Stdout, shortBanner(env.Build))
	logger.Info().Str("file", inputPath).Msg("trying to parse")

	// The output name cuts three characters, which only fits ".md"
	if !strings.EqualFold(filepath.Ext(inputPath), ".md") {
		logger.Warn().Str("output", tinymd.OutputPath(inputPath)).Msg("input has no .md extension")
	}

	svc := tinymd.New(tinymd.WithLogger(logger))
	res, err := svc.ConvertFile(ctx, inputPath)
	if err != nil {
		return err
	}

	logger.Info().
		Str("output", res.OutputPath).
		Int("fragments", res.Fragments).
		Int64("bytes", res.Bytes).
		Dur("duration", res.Duration).
		Msg("wrote")
	return nil
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(logger zerolog.Logger) func() {
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))
	if undo == nil {
		return func() {}
	}
	return undo
}

// noColor reports whether console logs to w should be plain text.
// Colors are kept only for terminals and are disabled by NO_COLOR.
func noColor(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}
