package cmd

import (
	"io"

	"github.com/google/renameio/v2"
)

// writeFile atomically creates or replaces the file at path with the output of write.
func writeFile(path string, write func(io.Writer) error) error {
	t, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer t.Cleanup()
	if err := write(t); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}
