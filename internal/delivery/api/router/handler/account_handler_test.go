package handler

import (
	"net/http"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAccountHandler(t *testing.T) (*AccountHandler, *mockUsecase.MockAccountUsecase) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)

	return NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: discardLogger()}), accountUC
}

func TestAccountHandler_Register(t *testing.T) {
	h, accountUC := newTestAccountHandler(t)
	user := &entity.User{ID: uuid.New(), Username: "mia", Email: "mia@example.com"}
	accountUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{
		Username:         "mia",
		Email:            "mia@example.com",
		Password:         "s3cret-pass",
		RepeatedPassword: "s3cret-pass",
		Role:             entity.RoleCustomer,
	}).Return(&usecase.AuthOutput{Token: "token", User: user}, nil).Once()

	body := `{"username":"mia","email":"mia@example.com","password":"s3cret-pass","repeated_password":"s3cret-pass","type":"customer"}`
	c, rec := newTestContext(http.MethodPost, "/api/registration/", body, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got authResponse
	decodeData(t, rec, &got)
	assert.Equal(t, authResponse{Token: "token", Username: "mia", Email: "mia@example.com", UserID: user.ID}, got)
}

func TestAccountHandler_Register_InvalidPayload(t *testing.T) {
	h, _ := newTestAccountHandler(t)
	body := `{"username":"mia","email":"not-an-email","password":"x","repeated_password":"x","type":"admin"}`
	c, rec := newTestContext(http.MethodPost, "/api/registration/", body, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	details := decode(t, rec).Error.Details
	assert.Equal(t, []string{"Enter a valid email address."}, details["email"])
	assert.Equal(t, []string{`"admin" is not a valid choice.`}, details["type"])
}

func TestAccountHandler_Login_WrongCredentials(t *testing.T) {
	h, accountUC := newTestAccountHandler(t)
	accountUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "mia", Password: "guess"}).
		Return(nil, domainerrors.NewFieldError("non_field_errors", "Invalid username or password.")).
		Once()

	c, rec := newTestContext(http.MethodPost, "/api/login/", `{"username":"mia","password":"guess"}`, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Invalid username or password."}, decode(t, rec).Error.Details["non_field_errors"])
}

func TestAccountHandler_Login_MalformedBody(t *testing.T) {
	h, _ := newTestAccountHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/login/", `{"username":`, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}
