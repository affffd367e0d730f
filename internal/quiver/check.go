package quiver

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/quiver/internal/postman"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand.
//
// A file path is checked directly. A directory is scanned recursively for
// .json files that declare the Postman collection schema, each of which is
// checked; the checks are independent and run concurrently.
func (q Quiver) Check(ctx context.Context, options CheckOptions) error {
	logger := q.logger.WithPrefix("check").With("path", options.Path)
	logger.Debug("Checking path")

	info, err := os.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = filepath.WalkDir(options.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.Type().IsRegular() && filepath.Ext(path) == ".json" {
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				if postman.LooksLikeCollection(raw) {
					paths = append(paths, path)
				}
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", options.Path, err)
		}
	} else {
		logger.Debug("Path is a file")

		paths = []string{options.Path}
	}

	logger.Debug("Checking collection files given by path", "number", len(paths))

	group, ctx := errgroup.WithContext(ctx)

	for _, path := range paths {
		group.Go(func() error {
			return q.checkFile(ctx, path)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		msg.Fsuccess(q.stdout, "%s is valid", path)
	}

	return nil
}

// checkFile validates a single collection file: it must decode, it must
// declare the Postman collection schema, and every leaf request must carry
// a method and a URL.
func (q Quiver) checkFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	if !postman.LooksLikeCollection(raw) {
		return fmt.Errorf("%s is not a Postman collection", path)
	}

	collection, err := postman.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for name, request := range collection.Requests() {
		if request.Method == "" {
			return fmt.Errorf("%s: request %q has no method", path, name)
		}

		if request.URL.Raw == "" {
			return fmt.Errorf("%s: request %q has no url", path, name)
		}
	}

	return nil
}
