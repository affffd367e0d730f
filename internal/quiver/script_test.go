package quiver_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.followtheprocess.codes/quiver/internal/quiver"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"generate": func() {
			app := quiver.New(false, os.Stdin, os.Stdout, os.Stderr)

			file := quiver.DefaultCollection
			if len(os.Args) > 1 {
				file = os.Args[1]
			}

			output := quiver.DefaultOutput
			if len(os.Args) > 2 {
				output = os.Args[2]
			}

			if err := app.Generate(file, quiver.GenerateOptions{Output: output}); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
		"check": func() {
			app := quiver.New(false, os.Stdin, os.Stdout, os.Stderr)

			path := "."
			if len(os.Args) > 1 {
				path = os.Args[1]
			}

			if err := app.Check(context.Background(), quiver.CheckOptions{Path: path}); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // as above
			}
		},
		"list": func() {
			app := quiver.New(false, os.Stdin, os.Stdout, os.Stderr)

			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "Usage: list <collection> <format>")
				os.Exit(1) //nolint:revive // as above
			}

			options := quiver.ListOptions{Format: os.Args[2]}
			if err := options.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // as above
			}

			if err := app.List(os.Args[1], options); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // as above
			}
		},
	})
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "script"),
		UpdateScripts:       *update,
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
	})
}
