package quiver

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/quiver/internal/postman"
)

// schemaV21 is the schema URL declared by Postman Collection v2.1 exports.
const schemaV21 = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// InitOptions are the options passed to the init subcommand.
type InitOptions struct {
	// Name is the collection name, the user is prompted if empty.
	Name string

	// Force overwrites an existing file.
	Force bool

	// Debug enables debug logging.
	Debug bool
}

// Init implements the init subcommand, scaffolding a minimal starter
// collection at path that generate can be pointed at straight away.
func (q Quiver) Init(path string, options InitOptions) error {
	logger := q.logger.WithPrefix("init")

	logger.Debug("Init configuration", "path", path, "options", fmt.Sprintf("%+v", options))

	name := options.Name
	if name == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Collection name").
					Description("The name stored in the collection's info block").
					Value(&name),
			),
		).WithInput(q.stdin).WithOutput(q.stderr)

		if err := form.Run(); err != nil {
			return fmt.Errorf("could not read collection name: %w", err)
		}
	}

	if name == "" {
		return fmt.Errorf("collection name must not be empty")
	}

	if _, err := os.Stat(path); err == nil && !options.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}

	uid, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("could not generate a collection id: %w", err)
	}

	collection := postman.Collection{
		Info: postman.Info{
			Name:      name,
			PostmanID: uid.String(),
			Schema:    schemaV21,
		},
		Item: []postman.Item{
			{
				Name: "Get Health",
				Request: &postman.Request{
					Method: "GET",
					URL: postman.URL{
						Raw:  "{{base_url}}/health",
						Path: []string{"health"},
					},
				},
			},
		},
		Variable: []postman.Variable{
			{Key: "base_url", Value: "http://localhost:8080"},
		},
	}

	raw, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode collection: %w", err)
	}

	raw = append(raw, '\n')

	if err := os.WriteFile(path, raw, filePermissions); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	msg.Fsuccess(q.stdout, "Created %s", path)

	return nil
}
