package resumegen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stormino/my-resume-generator/internal/assets"
	"github.com/stormino/my-resume-generator/internal/config"
	"github.com/stormino/my-resume-generator/internal/fileutil"
)

// auxExtensions are the compiler by-products removed after a successful
// run, along with the markup file itself.
var auxExtensions = []string{".aux", ".out", ".tex", ".log"}

// Service orchestrates the data-to-PDF pipeline. A Service is configured
// once and may run any number of sequential generations; concurrent runs
// must use distinct output directories, since intermediate file names are
// keyed only by language.
type Service struct {
	template   string
	color      string
	renderOpts RenderOptions
	assets     assets.Loader
	compiler   *Compiler
}

// Option configures a Service.
type Option func(*Service)

// WithAssetLoader overrides the embedded asset loader, e.g. with a
// FilesystemLoader for user-supplied templates.
func WithAssetLoader(l assets.Loader) Option {
	return func(s *Service) { s.assets = l }
}

// WithRunner overrides the subprocess runner (used by tests).
func WithRunner(r CommandRunner) Option {
	return func(s *Service) { s.compiler.Runner = r }
}

// New creates a Service from the generation config.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		template: cfg.Template,
		color:    cfg.Color,
		renderOpts: RenderOptions{
			ShowTechnologies:    cfg.ShowTechnologies,
			MaxHighlightsPerJob: cfg.MaxHighlightsPerJob,
		},
		assets:   assets.NewEmbeddedLoader(),
		compiler: NewCompiler(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Generate runs the full pipeline for one language and returns the path of
// the generated PDF. On success only the PDF remains in the output
// directory; on compiler failure the intermediate files are deliberately
// left in place for inspection.
func (s *Service) Generate(ctx context.Context, in Input) (string, error) {
	labels, err := Labels(in.Language)
	if err != nil {
		return "", err
	}

	template, err := s.loadTemplate()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(in.DataPath) // #nosec G304 -- data path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrDataNotFound, in.DataPath)
		}
		return "", fmt.Errorf("reading data file: %w", err)
	}

	resume, err := DecodeResume(data, in.Language)
	if err != nil {
		return "", err
	}

	document := Compose(template, resume, labels, s.color, s.renderOpts)

	if err := os.MkdirAll(in.OutputDir, 0o750); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	texName := "cv-" + in.Language + ".tex"
	if err := fileutil.WriteFile(filepath.Join(in.OutputDir, texName), document); err != nil {
		return "", err
	}

	classContent, err := s.assets.LoadClass()
	if err != nil {
		return "", err
	}
	if err := fileutil.WriteFile(filepath.Join(in.OutputDir, assets.ClassFileName), classContent); err != nil {
		return "", err
	}

	if err := s.compiler.Compile(ctx, in.OutputDir, texName); err != nil {
		return "", err
	}

	pdfPath := filepath.Join(in.OutputDir, "cv-"+in.Language+".pdf")
	if !fileutil.FileExists(pdfPath) {
		return "", fmt.Errorf("%w: %s", ErrOutputMissing, pdfPath)
	}

	if err := s.cleanup(in.OutputDir, in.Language); err != nil {
		return "", err
	}

	return pdfPath, nil
}

// loadTemplate loads the configured template, falling back to the default
// one when it is absent. Both missing is fatal.
func (s *Service) loadTemplate() (string, error) {
	template, err := s.assets.LoadTemplate(s.template)
	if errors.Is(err, assets.ErrTemplateNotFound) && s.template != assets.FallbackTemplate {
		template, err = s.assets.LoadTemplate(assets.FallbackTemplate)
	}
	if err != nil {
		return "", err
	}
	return template, nil
}

// cleanup removes the markup file, the compiler's auxiliary files, and the
// copied class asset, leaving only the PDF.
func (s *Service) cleanup(dir, lang string) error {
	for _, ext := range auxExtensions {
		if err := fileutil.RemoveIfExists(filepath.Join(dir, "cv-"+lang+ext)); err != nil {
			return err
		}
	}
	return fileutil.RemoveIfExists(filepath.Join(dir, assets.ClassFileName))
}
