package format

import (
	"io"

	"go.followtheprocess.codes/quiver/internal/dart"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes manifests as YAML documents.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given
// manifest as a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, manifest dart.Manifest) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(manifest); err != nil {
		return err
	}

	return encoder.Close()
}
