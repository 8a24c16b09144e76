package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/praetorian-inc/anno/pkg/logging"
)

// readInput reads the whole file at path, or all of stdin when path is empty
// or "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		logging.Logger().Debug("read stdin", zap.Int("bytes", len(data)))
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	logging.Logger().Debug("read file", zap.String("path", path), zap.Int("bytes", len(data)))
	return data, nil
}
