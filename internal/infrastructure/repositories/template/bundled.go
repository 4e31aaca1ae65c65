package template

import (
	"embed"
	"io/fs"

	"github.com/spf13/afero"
)

// files keeps underscore-prefixed dotfile stand-ins, hence the all: prefix.
//
//go:embed all:files
var files embed.FS

// Bundled returns the templates shipped inside the binary, rooted at
// "leafer/..." and "leaferx/...".
func Bundled() afero.Fs {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		panic(err) // the embedded tree is fixed at build time
	}
	return afero.FromIOFS{FS: sub}
}
