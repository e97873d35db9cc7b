package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore uploads and removes publicly addressable objects. Success
// of an upload is signalled solely by the returned URL; all failure
// causes are collapsed into the error.
type ObjectStore interface {
	Upload(ctx context.Context, name string, r io.Reader, contentType string) (string, error)
	Remove(ctx context.Context, url string) error
}

// UniqueName derives a collision-resistant object name from the
// original filename without contacting any service. The extension is
// preserved in lowercase.
func UniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.New().String() + ext
}
