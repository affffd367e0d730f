// Package format provides mechanisms for exporting a generation manifest, the
// inventory of requests a collection would generate, into serialised formats.
//
// The [Exporter] interface does this in a format-agnostic way, with the built
// in JSON, YAML and TOML exporters behind [New].
package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/quiver/internal/dart"
)

// Exporter is the interface defining a mechanism for exporting a
// [dart.Manifest] into an external format.
type Exporter interface {
	// Export writes the manifest to w in the external format.
	Export(w io.Writer, manifest dart.Manifest) error
}

// New returns the [Exporter] for the named format, one of "json", "yaml"
// or "toml".
func New(name string) (Exporter, error) {
	switch name {
	case "json":
		return JSONExporter{}, nil
	case "yaml":
		return YAMLExporter{}, nil
	case "toml":
		return TOMLExporter{}, nil
	default:
		return nil, fmt.Errorf("invalid format %q, allowed values are 'json', 'yaml', 'toml'", name)
	}
}
