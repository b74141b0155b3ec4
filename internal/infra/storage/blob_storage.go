// Package storage keeps uploaded media in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// ReferencePrefix starts every reference handed out by the storage.
const ReferencePrefix = service.MediaReferencePrefix

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket *blob.Bucket
}

// New opens the bucket named by media.bucketUrl and closes it on shutdown.
func New(params Params) (service.MediaStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %q", params.Config.Media.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})
	params.Logger.Info("Media bucket opened", "url", params.Config.Media.BucketURL)

	return NewBlobStorage(bucket), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket) service.MediaStorage {
	return &blobStorage{bucket: bucket}
}

// Save writes the content under a generated name that keeps the original extension.
func (s *blobStorage) Save(ctx context.Context, folder, filename, contentType string, content io.Reader) (string, error) {
	folder = strings.Trim(folder, "/")
	if folder == "" || strings.Contains(folder, "..") {
		return "", errors.Errorf("invalid media folder %q", folder)
	}

	key := folder + "/" + uuid.NewString() + extension(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open media writer")
	}
	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write media")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to store media")
	}

	return ReferencePrefix + key, nil
}

// Open returns a reader over the stored file.
func (s *blobStorage) Open(ctx context.Context, reference string) (*service.MediaObject, error) {
	key, err := keyOf(reference)
	if err != nil {
		return nil, err
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to open media")
	}

	return &service.MediaObject{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// Delete removes the stored file; a missing file is not an error.
func (s *blobStorage) Delete(ctx context.Context, reference string) error {
	key, err := keyOf(reference)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete media")
	}

	return nil
}

func keyOf(reference string) (string, error) {
	key, ok := strings.CutPrefix(reference, ReferencePrefix)
	if !ok || key == "" || strings.Contains(key, "..") {
		return "", service.ErrMediaNotFound
	}

	return key, nil
}

// extension returns the lowercased extension of filename when it is short and alphanumeric.
func extension(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
