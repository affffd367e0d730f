package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/quiver/internal/quiver"
)

// initialise returns the quiver init subcommand.
func initialise() (*cli.Command, error) {
	var options quiver.InitOptions

	return cli.New(
		"init",
		cli.Short("Scaffold a starter Postman collection"),
		cli.OptionalArg("path", "Path to write the collection to", quiver.DefaultCollection),
		cli.Flag(&options.Name, "name", 'n', "", "Collection name, prompted for if not given"),
		cli.Flag(&options.Force, "force", cli.NoShortHand, false, "Overwrite an existing file"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := quiver.New(options.Debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Init(cmd.Arg("path"), options)
		}),
	)
}
