//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/leaferjs/create-leafer/internal/domain/entities"
	"github.com/leaferjs/create-leafer/internal/domain/repositories"
)

// RenderCall records a single invocation of Render.
type RenderCall struct {
	Src  string
	Dest string
	Opts entities.RenderOptions
}

// SpyTemplateRepository implements repositories.TemplateRepository as a configurable spy.
type SpyTemplateRepository struct {
	RenderErr   error
	RenderCalls []RenderCall
}

var _ repositories.TemplateRepository = (*SpyTemplateRepository)(nil)

func (r *SpyTemplateRepository) Render(src, dest string, opts entities.RenderOptions) error {
	r.RenderCalls = append(r.RenderCalls, RenderCall{Src: src, Dest: dest, Opts: opts})
	return r.RenderErr
}
