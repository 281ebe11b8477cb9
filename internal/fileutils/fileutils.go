// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"os"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory with the given permissions if it
// doesn't exist yet, including any missing parents.
func EnsureDirectoryExists(dirPath string, perm os.FileMode) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, perm); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}
