package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	mdsite "github.com/mdsite/mdsite"
)

// Sentinel errors for CLI argument handling.
var (
	ErrParseFlags  = errors.New("invalid flags")
	ErrTooManyArgs = errors.New("too many arguments")
)

// cliArgs holds one parsed invocation.
type cliArgs struct {
	sourceDir      string
	outputDir      string
	formatMarkdown bool
	showHelp       bool
	showVersion    bool
}

// parseFormatLiteral interprets the third positional argument. Only the
// literals "false", "0", and "no" (case-insensitive) disable the flag;
// anything else keeps the default.
func parseFormatLiteral(s string) bool {
	switch strings.ToLower(s) {
	case "false", "0", "no":
		return false
	default:
		return true
	}
}

// parseArgs parses the command line. args includes the program name.
func parseArgs(args []string) (*cliArgs, error) {
	fs := flag.NewFlagSet("mdsite", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	a := &cliArgs{
		sourceDir:      mdsite.DefaultSourceDir,
		outputDir:      mdsite.DefaultOutputDir,
		formatMarkdown: true,
	}
	fs.BoolVarP(&a.showHelp, "help", "h", false, "show usage")
	fs.BoolVarP(&a.showVersion, "version", "V", false, "show version")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFlags, err)
	}

	rest := fs.Args()
	if len(rest) > 3 {
		return nil, fmt.Errorf("%w: expected at most 3 positional arguments, got %d", ErrTooManyArgs, len(rest))
	}
	if len(rest) > 0 {
		a.sourceDir = rest[0]
	}
	if len(rest) > 1 {
		a.outputDir = rest[1]
	}
	if len(rest) > 2 {
		a.formatMarkdown = parseFormatLiteral(rest[2])
	}

	return a, nil
}

// run executes one invocation end to end. The returned error is printed
// and mapped to an exit code by the caller.
func run(args []string, env *Environment) error {
	a, err := parseArgs(args)
	if err != nil {
		printUsage(env.Stderr)
		return err
	}

	if a.showHelp {
		printUsage(env.Stdout)
		return nil
	}
	if a.showVersion {
		fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
		return nil
	}

	opts := mdsite.Options{
		SourceDir:      a.sourceDir,
		OutputDir:      a.outputDir,
		FormatMarkdown: a.formatMarkdown,
	}

	// Construction runs the converter and template self-check, so a
	// missing capability fails here before the output tree is touched.
	builder, err := mdsite.NewBuilder(opts, mdsite.WithClock(env.Now))
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, "Starting site generation...")

	report, err := builder.Build(context.Background())
	if err != nil {
		return err
	}

	printReport(report, env)
	return nil
}

// printReport outputs per-item results and the final summary.
// Per-item failures do not change the exit code; they are visible in the
// output so an operator can see exactly which files were skipped.
func printReport(report *mdsite.Report, env *Environment) {
	for _, item := range report.Items {
		if item.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", item.Path, item.Err)
			continue
		}
		fmt.Fprintf(env.Stdout, "Created %s\n", item.Output)
	}

	succeeded, failed := report.Summary()
	fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	fmt.Fprintf(env.Stdout, "Site generated in '%s'\n", report.Output)
}
