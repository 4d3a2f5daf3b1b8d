// Package media stores story images and resolves them to URLs.
package media

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/soapboxsocial/stories/pkg/conf"
)

//go:generate mockgen -destination=../../mocks/storage_mock.go -package=mocks . Storage

// Storage is a blob store for story media. Store returns a handle, URL resolves a handle
// and Handle reverses URL.
type Storage interface {
	Store(ctx context.Context, bytes []byte) (string, error)
	URL(handle string) string
	Handle(url string) (string, error)
	Remove(ctx context.Context, handle string) error
}

// NewStorage creates the storage backend selected in the config.
func NewStorage(ctx context.Context, config conf.MediaConf) (Storage, error) {
	switch config.Backend {
	case "", "file":
		return NewFileBackend(config.Path, config.BaseURL), nil
	case "s3":
		return NewS3Backend(ctx, config.Region, config.Bucket, config.BaseURL)
	default:
		return nil, errors.Errorf("unknown media backend \"%s\"", config.Backend)
	}
}

// HandleFromURL strips the base URL from a media URL and returns the handle it was built from.
func HandleFromURL(baseURL, url string) (string, error) {
	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", errors.Errorf("url %s is not served from %s", url, baseURL)
	}

	return strings.TrimPrefix(url, prefix), nil
}

func join(baseURL, handle string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + handle
}
