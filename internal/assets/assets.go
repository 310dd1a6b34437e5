// Package assets provides the HTML page template used for site assembly.
// The visual markup is an opaque embedded asset: swapping it never requires
// touching the substitution logic.
package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*
var templates embed.FS

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// ValidateAssetName checks that an asset name is safe for use as a
// filename. Returns ErrInvalidAssetName if the name is empty or contains
// path separators, dots, or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
