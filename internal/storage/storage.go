package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting task photo files. The local
// filesystem implementation can be swapped for S3 / Cloudflare R2.
type Storage interface {
	// Save stores a file and returns its public URL. key is a unique
	// path within the storage (e.g. "tasks/<id>/<random>.jpg").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file for key.
	Delete(ctx context.Context, key string) error
}
