package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the generate command.
type cliFlags struct {
	config    string
	dataDir   string
	output    string
	assetPath string
	quiet     bool
	verbose   bool
	version   bool
}

// parseFlags parses command-line flags and returns the positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("cvgen", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "config.yaml", "generation config file")
	fs.StringVarP(&f.dataDir, "data-dir", "d", "data", "directory holding cv-<lang>.json files")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: /output if present, else ./output)")
	fs.StringVar(&f.assetPath, "asset-path", "", "load templates and the class file from this directory instead of the built-in ones")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.SetOutput(io.Discard) // errors are printed by the caller with usage
	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvgen [flags] <language>")
	fmt.Fprintln(w, "       cvgen doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a typeset CV from data/cv-<language>.json.")
	fmt.Fprintln(w, "Supported languages: en, it")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config string     generation config file (default \"config.yaml\")")
	fmt.Fprintln(w, "  -d, --data-dir string   directory holding cv-<lang>.json files (default \"data\")")
	fmt.Fprintln(w, "  -o, --output string     output directory (default: /output if present, else ./output)")
	fmt.Fprintln(w, "      --asset-path string load templates and the class file from this directory")
	fmt.Fprintln(w, "  -q, --quiet             only show errors")
	fmt.Fprintln(w, "  -v, --verbose           show progress details")
	fmt.Fprintln(w, "      --version           print version and exit")
}
