// Package cmd implements quiver's CLI.
package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/quiver/internal/quiver"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the quiver CLI.
func Build(ctx context.Context) (*cli.Command, error) {
	var options quiver.GenerateOptions

	return cli.New(
		"quiver",
		cli.Short("Generate Dart Dio client code from a Postman collection"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Generate from the default collection file", "quiver"),
		cli.Example("Generate from a specific collection", "quiver generate ./orders.postman_collection.json"),
		cli.Example(
			"Generate into a specific directory",
			"quiver generate ./orders.postman_collection.json --output ./lib/api",
		),
		cli.Example("Validate collections before generating", "quiver check ./collections"),
		cli.Example("See what a collection would generate", "quiver list ./orders.postman_collection.json"),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&options.Output, "output", 'o', quiver.DefaultOutput, "Directory to write generated files to"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logs"),
		cli.SubCommands(generate, check(ctx), list, initialise),
		cli.Run(func(cmd *cli.Command, args []string) error {
			// Bare quiver behaves exactly like quiver generate with the
			// default collection file.
			app := quiver.New(options.Debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Generate(quiver.DefaultCollection, options)
		}),
	)
}
