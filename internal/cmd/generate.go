package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/quiver/internal/quiver"
)

const generateLong = `
The collection argument is the path to a Postman Collection v2.x JSON
export, defaulting to 'postman_collection.json' in the current directory.

Each request in the collection produces one folder under the output
directory (named from the snake_case form of the request name) containing
the request function file plus, when the request has query parameters or
a JSON body, the companion data class files.

Requests in different folders that share a name write to the same output
folder, last one wins.
`

// generate returns the quiver generate subcommand.
func generate() (*cli.Command, error) {
	var options quiver.GenerateOptions

	return cli.New(
		"generate",
		cli.Short("Generate Dart Dio client code from a Postman collection"),
		cli.Long(generateLong),
		cli.OptionalArg("collection", "Path to the collection file", quiver.DefaultCollection),
		cli.Flag(&options.Output, "output", 'o', quiver.DefaultOutput, "Directory to write generated files to"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := quiver.New(options.Debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Generate(cmd.Arg("collection"), options)
		}),
	)
}
