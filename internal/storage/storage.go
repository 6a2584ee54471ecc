package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrFileNotFound - файл отсутствует в хранилище
var ErrFileNotFound = errors.New("file not found")

// Storage defines the interface for file storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path. Missing files are not an error.
	Delete(ctx context.Context, path string) error
}

// Config holds storage configuration
type Config struct {
	Type       string // local, s3
	BasePath   string // For local storage
	Bucket     string // For S3
	Region     string // For S3
	AccessKey  string // For S3
	SecretKey  string // For S3
	Endpoint   string // For R2, MinIO or custom S3
	PublicRead bool   // Make files public by default
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
