package model

import (
	"embed"
	"io/fs"
)

// The bundled distribution models, produced out-of-band by the training
// pipeline. One directory per ISO 639-1 code, one document per order.
//
//go:embed language-models
var embeddedModels embed.FS

// BundledModels returns the embedded model resources rooted at the
// language-models directory's parent, matching the layout the store reads.
func BundledModels() fs.FS {
	return embeddedModels
}
