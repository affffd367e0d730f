package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/quiver/internal/quiver"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a collection file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for .json
files declaring the Postman collection schema and any matching files
will be validated.
`

// check returns the check subcommand.
func check(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options quiver.CheckOptions

		return cli.New(
			"check",
			cli.Short("Check Postman collections for structural errors"),
			cli.Long(checkLong),
			cli.OptionalArg("path", "Path to check, may be directory or file", "."),
			cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				options.Path = cmd.Arg("path")
				app := quiver.New(options.Debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
				return app.Check(ctx, options)
			}),
		)
	}
}
