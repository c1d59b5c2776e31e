// Package storage keeps the raw bytes of uploaded documents. The database
// holds only the extracted text and embeddings; originals live here so they
// can be re-downloaded or re-ingested later.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"docqa-backend/internal/config"
)

// Storage stores and retrieves uploaded document blobs by storage path.
type Storage interface {
	Upload(ctx context.Context, documentID, filename string, data io.Reader) (string, error)
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)
	Delete(ctx context.Context, storagePath string) error
}

// New selects a storage driver from configuration.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "local":
		return NewLocalStorage(cfg.BasePath)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// objectPath builds a collision-free key for an upload. The document id
// prefix shards keys and guarantees uniqueness even for repeated filenames.
func objectPath(documentID, filename string) string {
	base := filepath.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '_'
		}
		return r
	}, base)

	return fmt.Sprintf("%s/%s_%s", documentID[:2], documentID, base)
}
