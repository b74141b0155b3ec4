package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.MediaStorage
	Logger  *slog.Logger
}

// MediaHandler streams stored uploads back to clients.
type MediaHandler struct {
	storage service.MediaStorage
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// Serve streams the file behind /media/<reference>
func (h *MediaHandler) Serve(c echo.Context) error {
	reference := service.MediaReferencePrefix + c.Param("*")

	object, err := h.storage.Open(c.Request().Context(), reference)
	if errors.Is(err, service.ErrMediaNotFound) {
		return response.HandleAppError(c, domainerrors.ErrMediaNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to open media")
	}
	defer func() {
		if err := object.Body.Close(); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
				Warn("Failed to close media", slog.String("reference", reference), slog.Any("error", err))
		}
	}()

	contentType := object.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Stream(http.StatusOK, contentType, object.Body)
}
