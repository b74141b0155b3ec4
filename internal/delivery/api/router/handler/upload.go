package handler

import (
	"net/http"

	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// formUpload opens the named multipart file. A missing file yields a nil
// upload so the use case reports it as a field error. The returned func
// closes the file.
func formUpload(c echo.Context, field string) (*usecase.UploadInput, func(), error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart form"), err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open upload")
	}

	return &usecase.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}, func() { _ = file.Close() }, nil
}
