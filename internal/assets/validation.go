package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the asset directory.
// Names are bare identifiers like "awesome-cv"; anything with a path
// separator, traversal sequence, or null byte is refused.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains traversal sequence", ErrInvalidAssetName, name)
	}
	return nil
}
