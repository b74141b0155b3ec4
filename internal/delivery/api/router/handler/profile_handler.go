package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves account profiles.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Location     *string `json:"location"`
	Tel          *string `json:"tel"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
}

// GetProfile returns one account with its profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user))
}

// UpdateProfile edits the caller's own profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), caller, userID, &usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Location:     req.Location,
		Tel:          req.Tel,
		Description:  req.Description,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user))
}

// UploadAvatar replaces the caller's profile picture from the multipart "file" field
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	upload, closeUpload, err := formUpload(c, "file")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeUpload()

	user, err := h.profileUC.UploadAvatar(c.Request().Context(), caller, userID, upload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user))
}

// ListBusinessProfiles returns every business account
func (h *ProfileHandler) ListBusinessProfiles(c echo.Context) error {
	return h.listProfiles(c, entity.RoleBusiness)
}

// ListCustomerProfiles returns every customer account
func (h *ProfileHandler) ListCustomerProfiles(c echo.Context) error {
	return h.listProfiles(c, entity.RoleCustomer)
}

func (h *ProfileHandler) listProfiles(c echo.Context, role entity.Role) error {
	users, err := h.profileUC.ListProfiles(c.Request().Context(), role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponses(users))
}
