package service

import (
	"context"
	"errors"
	"io"
)

// ErrMediaNotFound is returned when a stored file does not exist.
var ErrMediaNotFound = errors.New("media not found")

// MediaReferencePrefix starts every reference handed out by a MediaStorage.
const MediaReferencePrefix = "media/"

// MediaObject is an opened stored file. Callers must close Body.
type MediaObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// MediaStorage stores uploaded files and resolves them back by reference.
// References look like "media/<folder>/<name>".
type MediaStorage interface {
	// Save stores the content under folder and returns its reference.
	Save(ctx context.Context, folder, filename, contentType string, content io.Reader) (string, error)

	// Open returns the stored file for a reference.
	Open(ctx context.Context, reference string) (*MediaObject, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, reference string) error
}
