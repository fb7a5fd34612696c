package filesystem

import "os"

// Ops performs file system mutations for the processing pipeline
type Ops struct{}

// NewOps creates a new filesystem ops adapter
func NewOps() *Ops {
	return &Ops{}
}

// Exists returns true if the file exists
func (o *Ops) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Rename moves a file to a new path
func (o *Ops) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Remove deletes a file, ignoring already-missing targets
func (o *Ops) Remove(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
