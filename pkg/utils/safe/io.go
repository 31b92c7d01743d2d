package safe

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/leakgate/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Remove safely removes the file and logs error if any. A missing file is not an error.
func Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logging.Default().Warn("Fail to remove file", slog.Any("error", err))
	}
}

// RemoveAll safely removes the directory and logs error if any
func RemoveAll(path string) {
	if err := os.RemoveAll(path); err != nil {
		logging.Default().Warn("Fail to remove directory", slog.Any("error", err))
	}
}
