package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/quiver/internal/quiver"
)

// list returns the quiver list subcommand.
func list() (*cli.Command, error) {
	var options quiver.ListOptions

	return cli.New(
		"list",
		cli.Short("List the requests a collection would generate"),
		cli.RequiredArg("collection", "Path to the collection file"),
		cli.Flag(&options.Format, "format", 'f', "json", "Output format, one of (json|yaml|toml)"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			if err := options.Validate(); err != nil {
				return err
			}

			app := quiver.New(options.Debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.List(cmd.Arg("collection"), options)
		}),
	)
}
