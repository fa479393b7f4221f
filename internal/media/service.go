package media

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pixfeed/service/internal/storage"
)

// Service contains business logic for the media feed.
type Service struct {
	store      storage.Storage
	presignTTL time.Duration
}

// NewService creates a media Service issuing read URLs valid for presignTTL.
func NewService(store storage.Storage, presignTTL time.Duration) *Service {
	return &Service{store: store, presignTTL: presignTTL}
}

// Upload stores the image bytes under a fresh <uuid>.<ext> name with its
// initial metadata record and returns the generated name. The bucket is
// created on first use.
func (s *Service) Upload(ctx context.Context, data []byte, contentType, caption, username string) (string, error) {
	ext := extensionFor(contentType)
	name := uuid.NewString() + "." + ext

	stored := contentType
	if stored == "" {
		stored = "image/" + ext
	}

	metadata := map[string]string{
		metaCaption:    caption,
		metaUsername:   username,
		metaLikes:      "0",
		metaUploadedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.store.EnsureBucket(ctx); err != nil {
		return "", fmt.Errorf("ensure bucket: %w", err)
	}
	if err := s.store.Put(ctx, name, data, stored, metadata); err != nil {
		return "", err
	}
	return name, nil
}

// List returns the full feed with a fresh signed read URL per entry, in the
// order the storage backend enumerates. A missing bucket means nothing has
// been uploaded yet and yields an empty feed.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	infos, err := s.store.List(ctx, "", false)
	if err != nil {
		if errors.Is(err, storage.ErrNoBucket) {
			return []Post{}, nil
		}
		return nil, err
	}

	posts := make([]Post, 0, len(infos))
	for _, info := range infos {
		url, err := s.store.PresignedGetURL(ctx, info.Name, s.presignTTL)
		if err != nil {
			return nil, err
		}
		posts = append(posts, Post{
			Name:       info.Name,
			URL:        url,
			Caption:    info.Metadata[metaCaption],
			Username:   metaValue(info.Metadata, metaUsername, "anonymous"),
			Likes:      parseLikes(info.Metadata[metaLikes]),
			UploadedAt: info.Metadata[metaUploadedAt],
		})
	}
	return posts, nil
}

// Search returns the feed entries whose caption or username contains query,
// case-insensitively. An empty query returns the full feed.
func (s *Service) Search(ctx context.Context, query string) ([]Post, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return posts, nil
	}

	matched := make([]Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Caption), q) || strings.Contains(strings.ToLower(p.Username), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Like increments the object's like counter by one and returns the new value.
// The read and the write are two separate storage calls with no conditional
// guard between them: two concurrent likes can observe the same count and one
// increment is lost (last writer wins).
func (s *Service) Like(ctx context.Context, name string) (int, error) {
	info, err := s.store.Stat(ctx, name)
	if err != nil {
		return 0, err
	}

	likes := parseLikes(info.Metadata[metaLikes]) + 1
	info.Metadata[metaLikes] = strconv.Itoa(likes)
	if err := s.store.UpdateMetadata(ctx, name, info.Metadata); err != nil {
		return 0, err
	}
	return likes, nil
}

// Delete permanently removes the object and its metadata.
func (s *Service) Delete(ctx context.Context, name string) error {
	if _, err := s.store.Stat(ctx, name); err != nil {
		return err
	}
	return s.store.Delete(ctx, name)
}

// Caption renders the deterministic caption template from the object's
// metadata. No inference happens despite what the route name suggests.
func (s *Service) Caption(ctx context.Context, name string) (string, error) {
	info, err := s.store.Stat(ctx, name)
	if err != nil {
		return "", err
	}

	username := metaValue(info.Metadata, metaUsername, "someone")
	date := info.Metadata[metaUploadedAt]
	if len(date) > 10 {
		date = date[:10]
	}
	return fmt.Sprintf("A moment captured by @%s. Shared on %s. Visual storytelling at its finest.", username, date), nil
}

// IsNotFound returns true when the error indicates the media object is absent.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

// extensionFor derives the stored file extension from a Content-Type header.
func extensionFor(contentType string) string {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if ext, ok := extByContentType[mediaType]; ok {
		return ext
	}
	return "jpg"
}

// parseLikes reads a like counter, treating missing or malformed values as 0.
func parseLikes(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// metaValue returns the metadata value for key, or fallback when the key is
// absent entirely. An empty stored value is kept as-is.
func metaValue(md map[string]string, key, fallback string) string {
	if v, ok := md[key]; ok {
		return v
	}
	return fallback
}
