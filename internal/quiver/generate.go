package quiver

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/quiver/internal/dart"
	"go.followtheprocess.codes/quiver/internal/postman"
)

// Styles.
const (
	// folderStyle is the style used for printing the per-request output
	// folder names.
	folderStyle = hue.Cyan

	// dimmed is the style used for printing informational content like the
	// request method and URL next to each generated folder.
	dimmed = hue.BrightBlack | hue.Italic
)

// File system permissions for generated output.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// GenerateOptions are the options passed to the generate subcommand.
type GenerateOptions struct {
	// Output is the directory the generated files are written to.
	Output string

	// Debug enables debug logging.
	Debug bool
}

// Generate implements the generate subcommand, reading the collection stored
// in file and writing one folder of Dart sources per request under the
// output directory.
//
// Requests whose names collapse to the same folder silently overwrite one
// another, matching Postman's own lax attitude to duplicate names.
func (q Quiver) Generate(file string, options GenerateOptions) error {
	logger := q.logger.WithPrefix("generate")

	logger.Debug("Generate configuration", "file", file, "options", fmt.Sprintf("%+v", options))

	start := time.Now()

	collection, err := postman.Load(file)
	if err != nil {
		return err
	}

	logger.Debug(
		"Loaded collection",
		"file", file,
		"collection", collection.Info.Name,
		"took", time.Since(start),
	)

	if err := os.MkdirAll(options.Output, dirPermissions); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	seen := make(map[string]bool)
	generated := 0

	for name, request := range collection.Requests() {
		logger.Debug(
			"Generating request",
			"request", name,
			"method", request.Method,
			"url", request.URL.Raw,
		)

		unit, err := dart.Generate(name, request)
		if err != nil {
			return err
		}

		if unit.BodyDiagnostic != nil {
			logger.Warn(
				"Request body is not a JSON object, continuing without a body class",
				"request", name,
				"reason", unit.BodyDiagnostic,
			)
		}

		if seen[unit.Folder] {
			logger.Warn("Duplicate request folder, previous contents overwritten", "folder", unit.Folder)
		}

		seen[unit.Folder] = true

		if err := q.writeUnit(options.Output, unit); err != nil {
			return err
		}

		fmt.Fprintf(
			q.stdout,
			"%s %s\n",
			folderStyle.Text(filepath.Join(options.Output, unit.Folder)),
			dimmed.Text(request.Method+" "+request.URL.Raw),
		)

		generated++
	}

	msg.Fsuccess(q.stdout, "Generated %d requests in %s", generated, options.Output)

	return nil
}

// writeUnit writes a single generated unit into its per-request folder under
// the output root, the companion class files only when present.
func (q Quiver) writeUnit(output string, unit dart.Unit) error {
	folder := filepath.Join(output, unit.Folder)
	if err := os.MkdirAll(folder, dirPermissions); err != nil {
		return fmt.Errorf("could not create request folder: %w", err)
	}

	files := map[string]string{
		unit.File: unit.Source,
	}

	if unit.QueryParams != "" {
		files[unit.Folder+"_query_params.dart"] = unit.QueryParams
	}

	if unit.Body != "" {
		files[unit.Folder+"_body.dart"] = unit.Body
	}

	for name, source := range files {
		path := filepath.Join(folder, name)
		if err := os.WriteFile(path, []byte(source), filePermissions); err != nil {
			return fmt.Errorf("could not write %s: %w", path, err)
		}
	}

	return nil
}
