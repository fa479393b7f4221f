// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO, ArvanCloud, AWS S3).
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when the named object does not exist.
var ErrNotFound = errors.New("object not found")

// ErrNoBucket is returned when the bucket itself does not exist yet.
var ErrNoBucket = errors.New("bucket does not exist")

// ObjectInfo describes a stored object and its user metadata.
// Metadata keys are normalized to lower case.
type ObjectInfo struct {
	Name        string
	ContentType string
	Metadata    map[string]string
}

// Storage is the interface for reading and writing objects and their metadata.
// The like counter lives in object metadata and is rewritten with
// UpdateMetadata; a backend offering conditional updates (ETag/If-Match) can
// implement the same interface to close the read-modify-write race without
// touching the handlers.
type Storage interface {
	// EnsureBucket creates the bucket if it does not exist. Creating an
	// already-existing bucket is not an error.
	EnsureBucket(ctx context.Context) error
	// Put writes an object, overwriting any existing one of the same name.
	Put(ctx context.Context, name string, data []byte, contentType string, metadata map[string]string) error
	// Get returns the object's content.
	Get(ctx context.Context, name string) ([]byte, error)
	// Stat returns the object's metadata without fetching its content.
	Stat(ctx context.Context, name string) (*ObjectInfo, error)
	// List enumerates objects under prefix together with their metadata,
	// in the order the backend yields them. With recursive false, nested
	// keys (those containing a separator below prefix) are skipped.
	List(ctx context.Context, prefix string, recursive bool) ([]ObjectInfo, error)
	// Delete removes an object. Deleting an absent object is not an error;
	// callers that need existence should Stat first.
	Delete(ctx context.Context, name string) error
	// UpdateMetadata replaces the object's full user metadata record.
	UpdateMetadata(ctx context.Context, name string, metadata map[string]string) error
	// PresignedGetURL returns a time-limited signed read URL for the object.
	PresignedGetURL(ctx context.Context, name string, ttl time.Duration) (string, error)
}
