package assets

// Loader defines the contract for loading templates and the class file.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// LoadTemplate loads a LaTeX template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadClass loads the document class file referenced by the templates.
	// Returns ErrClassNotFound if it doesn't exist.
	LoadClass() (string, error)
}
