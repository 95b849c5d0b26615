package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"washly/config"
	"washly/infras/jwt"
	jwtMocks "washly/infras/jwt/mocks"
	otelMocks "washly/infras/otel/mocks"
	"washly/permissions"
	"washly/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, jwtService jwt.JWT, reached *bool) chi.Router {
	t.Helper()

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), &permissions.PermissionData{}, &config.Config{})

	router := chi.NewRouter()
	router.Use(authRole.Auth)
	router.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		*reached = true

		w.WriteHeader(http.StatusOK)
	})

	return router
}

func TestAuthMiddleware_RejectsIncompleteClaims(t *testing.T) {
	cases := []struct {
		name   string
		claims *jwt.Claims
	}{
		{name: "empty user id", claims: &jwt.Claims{UserID: "", Email: "user@example.com", Role: "user"}},
		{name: "empty email", claims: &jwt.Claims{UserID: "user-id-123", Email: "", Role: "user"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			jwtService.EXPECT().
				ValidateToken(gomock.Any(), "some-token", jwt.AccessToken).
				Return(tc.claims, nil)

			reached := false
			router := newAuthRouter(t, jwtService, &reached)

			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			request.Header.Set("Authorization", "Bearer some-token")

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, reached, "handler must not run with incomplete claims")
		})
	}
}

func TestAuthMiddleware_PassesCompleteClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)
	jwtService.EXPECT().
		ValidateToken(gomock.Any(), "some-token", jwt.AccessToken).
		Return(&jwt.Claims{UserID: "user-id-123", Email: "user@example.com", Role: "user"}, nil)

	reached := false
	router := newAuthRouter(t, jwtService, &reached)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer some-token")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, reached)
}
