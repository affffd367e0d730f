package format

import (
	"encoding/json"
	"io"

	"go.followtheprocess.codes/quiver/internal/dart"
)

// JSONExporter is an [Exporter] that writes manifests as JSON documents.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given
// manifest as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, manifest dart.Manifest) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(manifest)
}
