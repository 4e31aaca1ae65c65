package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/leaferjs/create-leafer/internal/domain/entities"
)

const (
	fileMode       = 0o644
	executableMode = 0o755
	dirMode        = 0o755

	dotfilePrefix = "_"
	gitignoreName = ".gitignore"
)

// TemplateRepository copies template trees onto a project directory. Templates
// come from the bundled set unless RenderOptions.TemplatesDir points elsewhere.
type TemplateRepository struct {
	bundled afero.Fs
	disk    afero.Fs
	target  afero.Fs
}

// NewTemplateRepository creates a renderer writing into target.
func NewTemplateRepository(target afero.Fs) *TemplateRepository {
	return NewTemplateRepositoryWithSource(Bundled(), afero.NewOsFs(), target)
}

// NewTemplateRepositoryWithSource creates a renderer with explicit filesystems.
func NewTemplateRepositoryWithSource(bundled, disk, target afero.Fs) *TemplateRepository {
	return &TemplateRepository{bundled: bundled, disk: disk, target: target}
}

// Render copies src onto dest depth-first. It stops at the first error, which
// leaves the files already written in place.
func (it *TemplateRepository) Render(src, dest string, opts entities.RenderOptions) error {
	source := it.bundled
	if opts.TemplatesDir != "" {
		source = afero.NewBasePathFs(it.disk, opts.TemplatesDir)
	}
	if exists, _ := afero.DirExists(source, src); !exists {
		return fmt.Errorf("template %q not found", src)
	}

	logger.Debugf("[template] Rendering %s into %s", src, dest)
	r := &renderer{source: source, target: it.target, strategy: opts.MergeStrategy}
	return r.render(src, dest)
}

type renderer struct {
	source   afero.Fs
	target   afero.Fs
	strategy entities.MergeStrategy
}

func (r *renderer) render(src, dest string) error {
	info, err := r.source.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat template %q: %w", src, err)
	}

	if info.IsDir() {
		return r.renderDir(src, dest)
	}

	filename := filepath.Base(src)
	if filename == entities.ManifestFileName && r.targetExists(dest) {
		return r.mergeManifest(src, dest)
	}

	if strings.HasPrefix(filename, dotfilePrefix) {
		dest = filepath.Join(filepath.Dir(dest), "."+strings.TrimPrefix(filename, dotfilePrefix))
	}

	if filepath.Base(dest) == gitignoreName && r.targetExists(dest) {
		return r.appendGitignore(src, dest)
	}

	return r.copyFile(src, dest, info)
}

func (r *renderer) renderDir(src, dest string) error {
	if err := r.target.MkdirAll(dest, dirMode); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dest, err)
	}

	entries, err := afero.ReadDir(r.source, src)
	if err != nil {
		return fmt.Errorf("failed to read template directory %q: %w", src, err)
	}
	for _, entry := range entries {
		if renderErr := r.render(
			filepath.Join(src, entry.Name()),
			filepath.Join(dest, entry.Name()),
		); renderErr != nil {
			return renderErr
		}
	}
	return nil
}

// mergeManifest deep-merges the template manifest into the existing one.
// A manifest that does not parse aborts the render.
func (r *renderer) mergeManifest(src, dest string) error {
	existing, err := r.readManifest(r.target, dest)
	if err != nil {
		return err
	}
	incoming, err := r.readManifest(r.source, src)
	if err != nil {
		return err
	}

	merged := entities.MergeManifests(existing, incoming, r.strategy)
	data, err := merged.Marshal()
	if err != nil {
		return fmt.Errorf("failed to render merged manifest %q: %w", dest, err)
	}
	if writeErr := afero.WriteFile(r.target, dest, data, fileMode); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", dest, writeErr)
	}
	logger.Debugf("[template] Merged %s into %s", src, dest)
	return nil
}

func (r *renderer) readManifest(fs afero.Fs, path string) (*entities.Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	manifest, err := entities.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return manifest, nil
}

// appendGitignore writes existing + "\n" + template, without deduplicating lines.
func (r *renderer) appendGitignore(src, dest string) error {
	existing, err := afero.ReadFile(r.target, dest)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", dest, err)
	}
	incoming, err := afero.ReadFile(r.source, src)
	if err != nil {
		return fmt.Errorf("failed to read template %q: %w", src, err)
	}

	content := make([]byte, 0, len(existing)+len(incoming)+1)
	content = append(content, existing...)
	content = append(content, '\n')
	content = append(content, incoming...)
	if writeErr := afero.WriteFile(r.target, dest, content, fileMode); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", dest, writeErr)
	}
	return nil
}

func (r *renderer) copyFile(src, dest string, info os.FileInfo) error {
	data, err := afero.ReadFile(r.source, src)
	if err != nil {
		return fmt.Errorf("failed to read template %q: %w", src, err)
	}

	perm := os.FileMode(fileMode)
	if info.Mode()&0o111 != 0 {
		perm = executableMode
	}
	if writeErr := afero.WriteFile(r.target, dest, data, perm); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", dest, writeErr)
	}
	return nil
}

func (r *renderer) targetExists(path string) bool {
	exists, err := afero.Exists(r.target, path)
	return err == nil && exists
}
