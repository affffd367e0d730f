package quiver

import (
	"fmt"

	"go.followtheprocess.codes/quiver/internal/dart"
	"go.followtheprocess.codes/quiver/internal/format"
	"go.followtheprocess.codes/quiver/internal/postman"
)

// ListOptions are the options passed to the list subcommand.
type ListOptions struct {
	// Format is the output format e.g. json, yaml.
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the ListOptions is valid, returning a non-nil
// error if it's not.
func (l ListOptions) Validate() error {
	switch format := l.Format; format {
	case "json", "yaml", "toml":
		return nil
	default:
		return fmt.Errorf("invalid option for --format %q, allowed values are 'json', 'yaml', 'toml'", format)
	}
}

// List implements the list subcommand, printing the inventory of requests
// that generating the given collection would produce.
func (q Quiver) List(file string, options ListOptions) error {
	logger := q.logger.WithPrefix("list")

	logger.Debug("List configuration", "file", file, "options", fmt.Sprintf("%+v", options))

	collection, err := postman.Load(file)
	if err != nil {
		return err
	}

	exporter, err := format.New(options.Format)
	if err != nil {
		return err
	}

	logger.Debug("Exporting manifest", "collection", collection.Info.Name, "format", options.Format)

	return exporter.Export(q.stdout, dart.ManifestOf(collection))
}
