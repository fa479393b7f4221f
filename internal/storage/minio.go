package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// Object metadata is carried as S3 user metadata (x-amz-meta-*), which is the
// only persistence this service has.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates a MinIO client for the given bucket. The bucket is
// not created here: Upload ensures it lazily, and listing an absent bucket is
// reported as ErrNoBucket so the feed can treat it as empty.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinioStorage{client: client, bucket: bucket}, nil
}

// EnsureBucket creates the bucket if missing. A concurrent create by another
// request is swallowed.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		code := minio.ToErrorResponse(err).Code
		if code == "BucketAlreadyOwnedByYou" || code == "BucketAlreadyExists" {
			return nil
		}
		return fmt.Errorf("create bucket %q: %w", s.bucket, err)
	}
	return nil
}

// Put writes data under name, overwriting any existing object.
func (s *MinioStorage) Put(ctx context.Context, name string, data []byte, contentType string, metadata map[string]string) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", name, err)
	}
	return nil
}

// Get fetches the object's full content.
func (s *MinioStorage) Get(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read object %q: %w", name, err)
	}
	return data, nil
}

// Stat returns the object's metadata, or ErrNotFound.
func (s *MinioStorage) Stat(ctx context.Context, name string) (*ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat object %q: %w", name, err)
	}
	return &ObjectInfo{
		Name:        info.Key,
		ContentType: info.ContentType,
		Metadata:    normalizeMetadata(info.UserMetadata),
	}, nil
}

// List enumerates objects under prefix with their metadata. MinIO returns
// user metadata inline for listings; plain AWS S3 does not, so entries that
// come back without metadata are stat-ed individually.
func (s *MinioStorage) List(ctx context.Context, prefix string, recursive bool) ([]ObjectInfo, error) {
	var infos []ObjectInfo
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:       prefix,
		Recursive:    recursive,
		WithMetadata: true,
	}) {
		if obj.Err != nil {
			if minio.ToErrorResponse(obj.Err).Code == "NoSuchBucket" {
				return nil, ErrNoBucket
			}
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			// common prefix entry, not an object
			continue
		}
		md := normalizeMetadata(obj.UserMetadata)
		if len(md) == 0 {
			st, err := s.Stat(ctx, obj.Key)
			if err != nil {
				return nil, err
			}
			md = st.Metadata
		}
		infos = append(infos, ObjectInfo{
			Name:        obj.Key,
			ContentType: obj.ContentType,
			Metadata:    md,
		})
	}
	return infos, nil
}

// Delete removes the object at name from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", name, err)
	}
	return nil
}

// UpdateMetadata replaces the object's user metadata by copying the object
// onto itself with a replace directive. This is a plain last-writer-wins
// overwrite; two concurrent updates can lose one of them.
func (s *MinioStorage) UpdateMetadata(ctx context.Context, name string, metadata map[string]string) error {
	src := minio.CopySrcOptions{Bucket: s.bucket, Object: name}
	dst := minio.CopyDestOptions{
		Bucket:          s.bucket,
		Object:          name,
		UserMetadata:    metadata,
		ReplaceMetadata: true,
	}
	if _, err := s.client.CopyObject(ctx, dst, src); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update metadata %q: %w", name, err)
	}
	return nil
}

// PresignedGetURL returns a signed read-only URL valid for ttl.
func (s *MinioStorage) PresignedGetURL(ctx context.Context, name string, ttl time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, name, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("presign %q: %w", name, err)
	}
	return u.String(), nil
}

// normalizeMetadata lower-cases metadata keys and strips the x-amz-meta-
// prefix that listings include but stat responses do not.
func normalizeMetadata(raw map[string]string) map[string]string {
	md := make(map[string]string, len(raw))
	for k, v := range raw {
		k = strings.ToLower(k)
		k = strings.TrimPrefix(k, "x-amz-meta-")
		md[k] = v
	}
	return md
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
