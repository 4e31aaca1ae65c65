package repositories

import "github.com/leaferjs/create-leafer/internal/domain/entities"

// TemplateRepository materializes a template tree onto a destination directory.
// Existing manifests are merged, dotfiles are renamed, and .gitignore files are appended.
type TemplateRepository interface {
	Render(src, dest string, opts entities.RenderOptions) error
}
