package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenService, Logger: discardLogger()})
	userID := uuid.New()
	tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Role: entity.RoleBusiness}, nil).Once()

	c, _ := newAuthContext("Bearer good")
	var got entity.Caller
	err := m.Authenticate(func(c echo.Context) error {
		caller, ok := GetCaller(c)
		require.True(t, ok)
		got = caller

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, entity.Caller{UserID: userID, Role: entity.RoleBusiness}, got)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*mockSvc.MockTokenService)
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Token abc"},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(tokenService *mockSvc.MockTokenService) {
				tokenService.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenService := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenService)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenService, Logger: discardLogger()})

			c, rec := newAuthContext(tt.header)
			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}
