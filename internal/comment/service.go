// Package comment manages comments on media objects. Each comment is
// persisted as one JSON object under the comments/ prefix of the same bucket
// that holds the images, so the bucket stays the only state the service has.
package comment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pixfeed/service/internal/storage"
)

// keyPrefix keeps comment objects out of the top-level feed listing.
const keyPrefix = "comments/"

// Comment is one comment on a media object. ParentID links threaded replies.
type Comment struct {
	ID        string `json:"id"`
	MediaName string `json:"media_name"`
	Username  string `json:"username"`
	Comment   string `json:"comment"`
	ParentID  string `json:"parent_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Service contains business logic for comments.
type Service struct {
	store storage.Storage
}

// NewService creates a comment Service.
func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

// Add stores a new comment on the named media object and returns it.
// The media object must exist.
func (s *Service) Add(ctx context.Context, mediaName, username, text, parentID string) (*Comment, error) {
	if _, err := s.store.Stat(ctx, mediaName); err != nil {
		return nil, err
	}

	c := &Comment{
		ID:        uuid.NewString(),
		MediaName: mediaName,
		Username:  username,
		Comment:   text,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode comment: %w", err)
	}

	key := keyPrefix + mediaName + "/" + c.ID + ".json"
	if err := s.store.Put(ctx, key, data, "application/json", nil); err != nil {
		return nil, err
	}
	return c, nil
}

// ListFor returns all comments on the named media object, in storage
// enumeration order. The media object must exist; having no comments is fine.
func (s *Service) ListFor(ctx context.Context, mediaName string) ([]Comment, error) {
	if _, err := s.store.Stat(ctx, mediaName); err != nil {
		return nil, err
	}

	infos, err := s.store.List(ctx, keyPrefix+mediaName+"/", true)
	if err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(infos))
	for _, info := range infos {
		if !strings.HasSuffix(info.Name, ".json") {
			continue
		}
		data, err := s.store.Get(ctx, info.Name)
		if err != nil {
			return nil, err
		}
		var c Comment
		if err := json.Unmarshal(data, &c); err != nil {
			log.Warn().Str("object", info.Name).Err(err).Msg("skipping malformed comment object")
			continue
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// IsNotFound returns true when the error indicates the media object is absent.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
