// Package storage is the blob store the importer saves uploaded images
// through. Files land on local disk and are served under a public base
// URL; swapping in an object store only needs another BlobStore.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BlobStore saves an uploaded file and returns its public URL
type BlobStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// diskStore is the local filesystem implementation of BlobStore
type diskStore struct {
	dir     string
	baseURL string
	log     zerolog.Logger
}

// NewDiskStore creates a blob store rooted at dir, serving under baseURL
func NewDiskStore(dir, baseURL string, log zerolog.Logger) BlobStore {
	return &diskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.With().Str("component", "storage").Logger(),
	}
}

// Save writes the file under a collision-free name and returns its URL
func (s *diskStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(name))
	filename := fmt.Sprintf("%s%s", uuid.New().String()[:8], ext)
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	url := s.baseURL + "/" + filename
	s.log.Debug().Str("file", filename).Str("url", url).Msg("Blob saved")
	return url, nil
}
