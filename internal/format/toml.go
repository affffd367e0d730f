package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/quiver/internal/dart"
)

// TOMLExporter is an [Exporter] that writes manifests as TOML documents.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter] and exports the given
// manifest as a complete TOML document.
func (t TOMLExporter) Export(w io.Writer, manifest dart.Manifest) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(manifest)
}
