package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	resumegen "github.com/stormino/my-resume-generator"
	"github.com/stormino/my-resume-generator/internal/assets"
	"github.com/stormino/my-resume-generator/internal/config"
	"github.com/stormino/my-resume-generator/internal/fileutil"
	"github.com/stormino/my-resume-generator/internal/hints"
)

// Exit codes: 0 on success, 1 on any fatal condition.
const (
	exitSuccess = 0
	exitFailure = 1
)

// dockerOutputDir is preferred when it exists (the Docker image mounts it);
// otherwise output lands in a local directory.
const (
	dockerOutputDir = "/output"
	localOutputDir  = "output"
)

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return exitFailure
	}

	if flags.version {
		fmt.Fprintf(stdout, "cvgen %s\n", Version)
		return exitSuccess
	}

	if len(positional) > 0 && positional[0] == "doctor" {
		return runDoctorCmd(positional[1:], stdout)
	}

	if len(positional) != 1 {
		printUsage(stderr)
		return exitFailure
	}

	lang := positional[0]
	if err := resumegen.ValidateLanguage(lang); err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return exitFailure
	}

	if err := generate(ctx, flags, lang, stdout); err != nil {
		fmt.Fprintf(stderr, "%v%s\n", err, hintFor(err, lang))
		return exitFailure
	}

	return exitSuccess
}

// generate wires config, service, and paths for one language.
func generate(ctx context.Context, flags *cliFlags, lang string, stdout io.Writer) error {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}

	var opts []resumegen.Option
	if flags.assetPath != "" {
		loader, err := assets.NewFilesystemLoader(flags.assetPath)
		if err != nil {
			return err
		}
		opts = append(opts, resumegen.WithAssetLoader(loader))
	}

	outputDir := resolveOutputDir(flags.output)
	dataPath := filepath.Join(flags.dataDir, "cv-"+lang+".json")

	if flags.verbose {
		fmt.Fprintf(stdout, "Template: %s, color: %s\n", cfg.Template, cfg.Color)
		fmt.Fprintf(stdout, "Data: %s, output: %s\n", dataPath, outputDir)
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Compiling PDF for %s...\n", lang)
	}

	svc := resumegen.New(cfg, opts...)
	pdfPath, err := svc.Generate(ctx, resumegen.Input{
		Language:  lang,
		DataPath:  dataPath,
		OutputDir: outputDir,
	})
	if err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Generated: %s\n", pdfPath)
	}
	return nil
}

// resolveOutputDir picks the output directory: an explicit flag wins, then
// the privileged fixed path if it exists, then the local fallback.
func resolveOutputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if fileutil.DirExists(dockerOutputDir) {
		return dockerOutputDir
	}
	return localOutputDir
}

// hintFor appends an actionable hint for well-known failures.
func hintFor(err error, lang string) string {
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return hints.ForCompilerNotFound()
	case errors.Is(err, resumegen.ErrCompilerFailure):
		return hints.ForCompilerFailure(lang)
	case errors.Is(err, resumegen.ErrDataNotFound):
		return hints.ForDataNotFound(lang)
	case errors.Is(err, config.ErrConfigParse):
		return hints.ForConfigParse()
	default:
		return ""
	}
}
