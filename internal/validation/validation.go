// Package validation provides input validation helpers for the CLI layer.
package validation

import (
	"fmt"
	"os"
)

// IsValidInputPath checks that a given path exists and is a regular file.
func IsValidInputPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected a file: %s", path)
	}
	return nil
}

// IsValidReportFormat checks if the given summary format is supported.
func IsValidReportFormat(format string) error {
	switch format {
	case "text", "json", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are 'text', 'json', 'csv'", format)
	}
}
