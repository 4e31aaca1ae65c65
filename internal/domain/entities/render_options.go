package entities

// RenderOptions tunes a single template render pass.
type RenderOptions struct {
	MergeStrategy MergeStrategy

	// TemplatesDir replaces the bundled templates with a directory on disk.
	TemplatesDir string
}
