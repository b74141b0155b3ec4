// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/pkg/errors"
)

// notFoundErrors maps repository sentinels onto the application errors sent to clients.
var notFoundErrors = map[error]*domainerrors.BaseError{
	repository.ErrUserNotFound:        domainerrors.ErrUserNotFound,
	repository.ErrOfferNotFound:       domainerrors.ErrOfferNotFound,
	repository.ErrOfferDetailNotFound: domainerrors.ErrOfferDetailNotFound,
	repository.ErrOrderNotFound:       domainerrors.ErrOrderNotFound,
	repository.ErrReviewNotFound:      domainerrors.ErrReviewNotFound,
}

// translateRepoError wraps err with msg, swapping a repository not-found
// sentinel for its application error.
func translateRepoError(err error, msg string) error {
	for sentinel, appErr := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return errors.Wrap(appErr, msg)
		}
	}

	return errors.Wrap(err, msg)
}

// loggerFrom returns the request-scoped logger if available, otherwise the fallback.
func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// validateImageUpload checks an upload against the size limit and requires an image content type.
func validateImageUpload(field string, upload *usecase.UploadInput, maxSize int64) error {
	if upload == nil || upload.Content == nil {
		return domainerrors.NewFieldError(field, "No file was submitted.")
	}

	errs := domainerrors.FieldErrors{}
	if upload.Size <= 0 {
		errs.Add(field, "The submitted file is empty.")
	}
	if maxSize > 0 && upload.Size > maxSize {
		errs.Add(field, fmt.Sprintf("Ensure the file is at most %s (it has %s).", util.FormatBytes(maxSize), util.FormatBytes(upload.Size)))
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		errs.Add(field, "Upload a valid image.")
	}

	return errs.AsError()
}
