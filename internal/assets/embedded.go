package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

//go:embed class/*
var class embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements the Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a LaTeX template from embedded assets by name.
// The name should not include the .tex extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".tex")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadClass loads the document class file from embedded assets.
func (e *EmbeddedLoader) LoadClass() (string, error) {
	content, err := class.ReadFile("class/" + ClassFileName)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrClassNotFound, ClassFileName)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
