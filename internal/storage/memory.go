package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStorage is an in-memory Storage used in tests and local development.
// Listing order is lexical by object name, matching S3-compatible backends.
type MemoryStorage struct {
	mu      sync.RWMutex
	created bool
	objects map[string]*memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
	metadata    map[string]string
}

// NewMemoryStorage returns an empty MemoryStorage with no bucket yet.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string]*memoryObject)}
}

func (s *MemoryStorage) EnsureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = true
	return nil
}

func (s *MemoryStorage) Put(ctx context.Context, name string, data []byte, contentType string, metadata map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = true
	s.objects[name] = &memoryObject{
		data:        append([]byte(nil), data...),
		contentType: contentType,
		metadata:    cloneMetadata(metadata),
	}
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[name]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), obj.data...), nil
}

func (s *MemoryStorage) Stat(ctx context.Context, name string) (*ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &ObjectInfo{Name: name, ContentType: obj.contentType, Metadata: cloneMetadata(obj.metadata)}, nil
}

func (s *MemoryStorage) List(ctx context.Context, prefix string, recursive bool) ([]ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.created {
		return nil, ErrNoBucket
	}

	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if !recursive && strings.Contains(name[len(prefix):], "/") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	infos := make([]ObjectInfo, 0, len(names))
	for _, name := range names {
		obj := s.objects[name]
		infos = append(infos, ObjectInfo{Name: name, ContentType: obj.contentType, Metadata: cloneMetadata(obj.metadata)})
	}
	return infos, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, name)
	return nil
}

func (s *MemoryStorage) UpdateMetadata(ctx context.Context, name string, metadata map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[name]
	if !ok {
		return ErrNotFound
	}
	obj.metadata = cloneMetadata(metadata)
	return nil
}

func (s *MemoryStorage) PresignedGetURL(ctx context.Context, name string, ttl time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[name]; !ok {
		return "", ErrNotFound
	}
	return fmt.Sprintf("https://storage.invalid/images/%s?X-Expires=%d", name, int64(ttl.Seconds())), nil
}

func cloneMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
