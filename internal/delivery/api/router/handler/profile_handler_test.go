package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: discardLogger()}), profileUC
}

func businessUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:       id,
		Username: "studio",
		Email:    "studio@example.com",
		Profile: &entity.Profile{
			UserID:   id,
			Role:     entity.RoleBusiness,
			File:     "media/profiles/studio.png",
			Location: "Berlin",
		},
	}
}

func TestProfileHandler_GetProfile(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	user := businessUser(uuid.New())
	profileUC.EXPECT().GetProfile(mock.Anything, user.ID).Return(user, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/profile/"+user.ID.String()+"/", "", customerCaller())
	withParam(c, "id", user.ID.String())

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got profileResponse
	decodeData(t, rec, &got)
	assert.Equal(t, user.ID, got.User)
	assert.Equal(t, entity.RoleBusiness, got.Type)
	assert.Equal(t, "Berlin", got.Location)
	require.NotNil(t, got.File)
	assert.Equal(t, "/api/media/profiles/studio.png", *got.File)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		h, _ := newTestProfileHandler(t)
		caller := customerCaller()
		c, rec := newTestContext(http.MethodPatch, "/api/profile/"+caller.UserID.String()+"/", `{"email":"nope"}`, caller)
		withParam(c, "id", caller.UserID.String())

		require.NoError(t, h.UpdateProfile(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "email")
	})

	t.Run("other account", func(t *testing.T) {
		h, profileUC := newTestProfileHandler(t)
		caller := customerCaller()
		otherID := uuid.New()
		location := "Paris"
		profileUC.EXPECT().UpdateProfile(mock.Anything, *caller, otherID, &usecase.UpdateProfileInput{Location: &location}).
			Return(nil, domainerrors.ErrForbidden).
			Once()

		c, rec := newTestContext(http.MethodPatch, "/api/profile/"+otherID.String()+"/", `{"location":"Paris"}`, caller)
		withParam(c, "id", otherID.String())

		require.NoError(t, h.UpdateProfile(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	caller := &entity.Caller{UserID: uuid.New(), Role: entity.RoleBusiness}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	profileUC.EXPECT().UploadAvatar(mock.Anything, *caller, caller.UserID, mock.MatchedBy(func(in *usecase.UploadInput) bool {
		content, err := io.ReadAll(in.Content)

		return err == nil && in.Filename == "me.png" && in.Size == 4 && string(content) == "\x89PNG"
	})).Return(businessUser(caller.UserID), nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/profile/"+caller.UserID.String()+"/avatar/", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetCaller(c, *caller)
	withParam(c, "id", caller.UserID.String())

	require.NoError(t, h.UploadAvatar(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_ListProfiles(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	users := []*entity.User{businessUser(uuid.New()), businessUser(uuid.New())}
	profileUC.EXPECT().ListProfiles(mock.Anything, entity.RoleBusiness).Return(users, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/profiles/business/", "", customerCaller())

	require.NoError(t, h.ListBusinessProfiles(c))

	var got []profileResponse
	decodeData(t, rec, &got)
	assert.Len(t, got, 2)
}
