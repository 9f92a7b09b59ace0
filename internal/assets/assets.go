// Package assets provides the LaTeX templates and the document class file
// used for CV generation. Assets can be loaded from embedded files or from
// a custom filesystem path.
package assets

// FallbackTemplate is tried when the configured template does not exist.
const FallbackTemplate = "cv"

// ClassFileName is the style asset copied next to the generated markup;
// the templates reference it by this exact name.
const ClassFileName = "awesome-cv.cls"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a LaTeX template by name using the default embedded
// loader. The name should not include the .tex extension or path
// components. Returns ErrTemplateNotFound if the template does not exist.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// LoadClass loads the document class file using the default embedded loader.
func LoadClass() (string, error) {
	return defaultLoader.LoadClass()
}
