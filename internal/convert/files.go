package convert

import (
	"io"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/rs/zerolog/log"
)

// ReadInput reads the file at path, or stdin when path is empty.
func ReadInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Annotate(err, "reading stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %q", path)
	}
	return data, nil
}

// WriteOutput writes data to the file at path, creating parent directories,
// or to stdout when path is empty. A trailing newline is added.
func WriteOutput(path string, data []byte) error {
	if path == "" {
		return write(os.Stdout, data)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Annotatef(err, "creating directory for %q", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "creating %q", path)
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return write(f, data)
}

func write(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
