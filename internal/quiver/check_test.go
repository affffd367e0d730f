package quiver_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/quiver/internal/quiver"
	"go.followtheprocess.codes/test"
	"go.uber.org/goleak"
)

func TestCheckValid(t *testing.T) {
	pattern := filepath.Join("testdata", "check", "valid", "*.json")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			app := quiver.New(false, os.Stdin, stdout, stderr)

			err := app.Check(t.Context(), quiver.CheckOptions{Path: file})
			test.Ok(t, err)

			test.Diff(t, stdout.String(), fmt.Sprintf("Success: %s is valid\n", file))
			test.Diff(t, stderr.String(), "")
		})
	}
}

func TestCheckValidDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join("testdata", "check", "valid")
	pattern := filepath.Join(path, "*.json")

	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app := quiver.New(false, os.Stdin, stdout, stderr)

	err = app.Check(t.Context(), quiver.CheckOptions{Path: path})
	test.Ok(t, err)

	s := &strings.Builder{}

	// Write a success line for every collection in the dir
	for _, file := range files {
		fmt.Fprintf(s, "Success: %s is valid\n", file)
	}

	test.Diff(t, stdout.String(), s.String())
	test.Diff(t, stderr.String(), "")
}

func TestCheckInvalid(t *testing.T) {
	pattern := filepath.Join("testdata", "check", "invalid", "*.json")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			app := quiver.New(false, os.Stdin, stdout, stderr)

			err := app.Check(t.Context(), quiver.CheckOptions{Path: file})
			test.Err(t, err)

			test.Equal(t, stdout.String(), "")
			test.True(t, strings.Contains(err.Error(), file))
		})
	}
}

func TestCheckCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app := quiver.New(false, os.Stdin, stdout, stderr)

	err := app.Check(ctx, quiver.CheckOptions{Path: filepath.Join("testdata", "check", "valid")})
	test.Err(t, err)
	test.Equal(t, stdout.String(), "")
}

func TestCheckMissingPath(t *testing.T) {
	defer goleak.VerifyNone(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app := quiver.New(false, os.Stdin, stdout, stderr)

	err := app.Check(t.Context(), quiver.CheckOptions{Path: filepath.Join(t.TempDir(), "nope")})
	test.Err(t, err)
}
