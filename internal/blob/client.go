// SPDX-License-Identifier: Apache-2.0

// Package blob stores binary uploads (certificate documents, project
// illustrations, avatars) in an S3-compatible object store via MinIO.
//
// Object keys are opaque server-generated UUIDs; the database records that
// reference them are the single source of truth for which objects are live.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/avetrin/go-folio/internal/config"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/utils"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrObjectNotFound is returned when the requested object key does not
// exist in the bucket.
var ErrObjectNotFound = errors.New("object was not found")

// Object describes a stored blob: the streamable content plus the metadata
// recorded at upload time.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Store is the blob surface the service layer depends on.
type Store interface {
	// Put streams content into a fresh server-generated key and returns it.
	Put(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)

	// Get opens the object for streaming, or returns [ErrObjectNotFound].
	// The caller owns the returned Body and must close it.
	Get(ctx context.Context, key string) (Object, error)

	// Delete removes the object. Deleting an absent key is not an error,
	// so cleanup paths can retry safely.
	Delete(ctx context.Context, key string) error

	// ListKeys returns every object key last modified before cutoff.
	// The cutoff lets the orphan sweeper ignore uploads whose referencing
	// database record may not be committed yet.
	ListKeys(ctx context.Context, cutoff time.Time) ([]string, error)
}

// minioAPI is the internal adapter interface enabling tests to run without
// a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

// minioClientWrapper adapts *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}

func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}

func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (w minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := w.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (w minioClientWrapper) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return w.c.RemoveObject(ctx, bucketName, objectName, opts)
}

func (w minioClientWrapper) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return w.c.StatObject(ctx, bucketName, objectName, opts)
}

func (w minioClientWrapper) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return w.c.ListObjects(ctx, bucketName, opts)
}

var _ Store = (*Client)(nil)

// Client implements [Store] on top of a MinIO bucket.
type Client struct {
	api    minioAPI
	bucket string
	logger *logger.Logger
}

// NewClient connects to the object store described by cfg and ensures the
// configured bucket exists.
func NewClient(ctx context.Context, cfg config.Blob, log *logger.Logger) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Err(err).Str("func", "blob.NewClient").Msg("error connecting object store")
		return nil, fmt.Errorf("failed to connect object store: %w", err)
	}

	return NewClientWithAPI(ctx, minioClientWrapper{c: mc}, cfg.Bucket, log)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket string, log *logger.Logger) (*Client, error) {
	c := &Client{
		api:    api,
		bucket: bucket,
		logger: log,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err = c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		c.logger.Info().Str("bucket", c.bucket).Msg("created blob bucket")
	}

	return nil
}

// Put implements [Store.Put].
func (c *Client) Put(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	key := utils.NewObjectKey()

	_, err := c.api.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		c.logger.Err(err).Str("func", "*Client.Put").Str("key", key).Msg("error uploading object")
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return key, nil
}

// Get implements [Store.Get]. The object is stat-ed first so the content
// type and size are known before any bytes are streamed.
func (c *Client) Get(ctx context.Context, key string) (Object, error) {
	info, err := c.api.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return Object{}, ErrObjectNotFound
		}
		c.logger.Err(err).Str("func", "*Client.Get").Str("key", key).Msg("error stating object")
		return Object{}, fmt.Errorf("failed to stat object: %w", err)
	}

	body, err := c.api.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		c.logger.Err(err).Str("func", "*Client.Get").Str("key", key).Msg("error getting object")
		return Object{}, fmt.Errorf("failed to get object: %w", err)
	}

	return Object{
		Body:        body,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

// Delete implements [Store.Delete].
func (c *Client) Delete(ctx context.Context, key string) error {
	err := c.api.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && !isNoSuchKey(err) {
		c.logger.Err(err).Str("func", "*Client.Delete").Str("key", key).Msg("error deleting object")
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// ListKeys implements [Store.ListKeys].
func (c *Client) ListKeys(ctx context.Context, cutoff time.Time) ([]string, error) {
	keys := make([]string, 0)
	for info := range c.api.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			c.logger.Err(info.Err).Str("func", "*Client.ListKeys").Msg("error listing objects")
			return nil, fmt.Errorf("failed to list objects: %w", info.Err)
		}
		if info.LastModified.After(cutoff) {
			continue
		}
		keys = append(keys, info.Key)
	}
	return keys, nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
