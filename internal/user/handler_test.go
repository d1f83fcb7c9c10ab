//go:build unit

package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-portal-api/internal/middleware"
	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
	"career-portal-api/pkg/jwt_generator"
	"career-portal-api/pkg/server"
)

var TestJwtConfig = config.JwtConfig{
	AccessSecret:    []byte("test-access-secret"),
	RefreshSecret:   []byte("test-refresh-secret"),
	AccessTokenTTL:  15 * time.Minute,
	RefreshTokenTTL: 168 * time.Hour,
}

func newTestApp(userHandler server.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	userHandler.RegisterRoutes(app)

	return app
}

func bearerHeader(t *testing.T, jwtGenerator jwt_generator.JwtGenerator, userId, role string) string {
	t.Helper()

	accessToken, err := jwtGenerator.GenerateAccessToken(userId, role)
	require.NoError(t, err)

	return fmt.Sprintf("Bearer %s", accessToken)
}

func TestNewHandler(t *testing.T) {
	userHandler := NewHandler(nil, nil, nil)

	assert.Implements(t, (*server.Handler)(nil), userHandler)
}

func TestHandler_GetAllUsers(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)
	protect := middleware.Protect(jwtGenerator)

	t.Run("happy path", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindUsers(gomock.Any(), &ListFilter{Role: RoleStudent, Page: 1, Limit: 20}).
			Return([]*Document{{Id: uuid.New().String(), Role: RoleStudent}}, int64(1), nil)

		app := newTestApp(NewHandler(mockRepository, nil, protect))

		req := httptest.NewRequest(fiber.MethodGet, "/api/users?role=student", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), RoleAdmin))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var respBody map[string]any
		err = json.NewDecoder(resp.Body).Decode(&respBody)
		require.NoError(t, err)
		assert.Equal(t, float64(1), respBody["total"])
		assert.Equal(t, float64(1), respBody["pages"])
	})

	t.Run("when caller is not an admin should return forbidden", func(t *testing.T) {
		app := newTestApp(NewHandler(nil, nil, protect))

		req := httptest.NewRequest(fiber.MethodGet, "/api/users", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestHandler_GetUserById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)
	protect := middleware.Protect(jwtGenerator)

	t.Run("happy path", func(t *testing.T) {
		testUserId := uuid.New().String()

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindUserWithId(gomock.Any(), testUserId).
			Return(&Document{Id: testUserId}, nil)

		app := newTestApp(NewHandler(mockRepository, nil, protect))

		req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/users/%s", testUserId), nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, testUserId, RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when caller is another user should return forbidden", func(t *testing.T) {
		app := newTestApp(NewHandler(nil, nil, protect))

		req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/users/%s", uuid.New().String()), nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin can view any profile", func(t *testing.T) {
		testUserId := uuid.New().String()

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindUserWithId(gomock.Any(), testUserId).
			Return(&Document{Id: testUserId}, nil)

		app := newTestApp(NewHandler(mockRepository, nil, protect))

		req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/users/%s", testUserId), nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), RoleAdmin))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when user does not exist should return not found", func(t *testing.T) {
		testUserId := uuid.New().String()

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindUserWithId(gomock.Any(), testUserId).
			Return(nil, ErrUserNotFound)

		app := newTestApp(NewHandler(mockRepository, nil, protect))

		req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/users/%s", testUserId), nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, testUserId, RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_UpdateUserById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)
	protect := middleware.Protect(jwtGenerator)

	t.Run("happy path", func(t *testing.T) {
		testUserId := uuid.New().String()
		testPayload := &UpdateUserPayload{
			Name:   "Updated Name",
			Status: "experienced",
		}

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			UpdateUserById(gomock.Any(), testUserId, testPayload).
			Return(&Document{Id: testUserId, Name: testPayload.Name}, nil)

		app := newTestApp(NewHandler(mockRepository, nil, protect))

		reqBody, err := json.Marshal(testPayload)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPut, fmt.Sprintf("/api/users/%s", testUserId), bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, testUserId, RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when status value is invalid should return bad request", func(t *testing.T) {
		testUserId := uuid.New().String()

		app := newTestApp(NewHandler(nil, nil, protect))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/users/%s", testUserId),
			bytes.NewReader([]byte(`{"status":"veteran"}`)),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, testUserId, RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when caller is another user should return forbidden", func(t *testing.T) {
		app := newTestApp(NewHandler(nil, nil, protect))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/users/%s", uuid.New().String()),
			bytes.NewReader([]byte(`{"name":"Updated Name"}`)),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestHandler_DeleteUserById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)
	protect := middleware.Protect(jwtGenerator)

	t.Run("happy path", func(t *testing.T) {
		testUserId := uuid.New().String()

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			DeleteUserById(gomock.Any(), testUserId).
			Return(nil)

		app := newTestApp(NewHandler(mockRepository, nil, protect))

		req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/api/users/%s", testUserId), nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), RoleAdmin))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when caller is not an admin should return forbidden", func(t *testing.T) {
		testUserId := uuid.New().String()

		app := newTestApp(NewHandler(nil, nil, protect))

		req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/api/users/%s", testUserId), nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, testUserId, RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
