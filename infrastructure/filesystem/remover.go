package filesystem

import (
	"os"

	"scurry-locator/domain/pipeline"
)

// Remover implements pipeline.FileRemover using the os package
type Remover struct{}

// NewRemover creates a new filesystem remover
func NewRemover() *Remover {
	return &Remover{}
}

// Remove deletes the file at path. A file that does not exist is not an
// error: cleanup runs on failure paths where some stage outputs were never
// created.
func (r *Remover) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Ensure Remover implements pipeline.FileRemover
var _ pipeline.FileRemover = (*Remover)(nil)

// Checker implements pipeline.FileChecker using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists reports whether a file exists at path
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Ensure Checker implements pipeline.FileChecker
var _ pipeline.FileChecker = (*Checker)(nil)
