package main

import (
	"fmt"
	"os"
)

// readSource reads the file at path. It is the one piece of the driver
// spec.md §1 calls out by name as an external collaborator: the core
// packages never touch the filesystem.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
