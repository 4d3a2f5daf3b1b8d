package media

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileBackend keeps media in a local directory that is served under baseURL.
type FileBackend struct {
	path    string
	baseURL string
}

func NewFileBackend(path, baseURL string) *FileBackend {
	return &FileBackend{path: path, baseURL: baseURL}
}

// Store places a story image in the designated directory
func (fb *FileBackend) Store(_ context.Context, bytes []byte) (string, error) {
	name := uuid.New().String() + ".png"

	err := os.WriteFile(filepath.Join(fb.path, name), bytes, 0644)
	if err != nil {
		return "", err
	}

	return name, nil
}

func (fb *FileBackend) URL(handle string) string {
	return join(fb.baseURL, handle)
}

func (fb *FileBackend) Handle(url string) (string, error) {
	return HandleFromURL(fb.baseURL, url)
}

// Remove permanently deletes a story image from the file system
func (fb *FileBackend) Remove(_ context.Context, handle string) error {
	return os.Remove(filepath.Join(fb.path, filepath.Base(handle)))
}
