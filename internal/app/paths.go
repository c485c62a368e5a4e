package app

import (
	"os"
	"path/filepath"
)

// DataDirName is the working-directory-local directory holding the database.
const DataDirName = ".quotegen"

// DBFileName is the bbolt database file inside the data directory.
const DBFileName = "quotegen.db"

// DataDir returns the data directory for a working directory. The
// QUOTEGEN_DATA_DIR environment variable (typically set via a .env file)
// overrides the default.
func DataDir(root string) string {
	if dir := os.Getenv("QUOTEGEN_DATA_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(root, DataDirName)
}

// DBPath returns the database path for a working directory, creating the
// data directory if needed.
func DBPath(root string) (string, error) {
	dir := DataDir(root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, DBFileName), nil
}
