//go:build unit

package job

import (
	"bytes"
	"context"
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

	"career-portal-api/internal/company"
	"career-portal-api/internal/middleware"
	"career-portal-api/internal/user"
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

func newTestApp(jobHandler server.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	jobHandler.RegisterRoutes(app)

	return app
}

func bearerHeader(t *testing.T, jwtGenerator jwt_generator.JwtGenerator, userId, role string) string {
	t.Helper()

	accessToken, err := jwtGenerator.GenerateAccessToken(userId, role)
	require.NoError(t, err)

	return fmt.Sprintf("Bearer %s", accessToken)
}

func TestNewHandler(t *testing.T) {
	jobHandler := NewHandler(nil, nil, nil, nil)

	assert.Implements(t, (*server.Handler)(nil), jobHandler)
}

func TestHandler_GetJobs(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("public listing resolves company and poster summaries", func(t *testing.T) {
		testCompanyId := uuid.New().String()
		testPosterId := uuid.New().String()

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindJobs(gomock.Any(), &ListFilter{Page: 1, Limit: 10}).
			Return([]*Document{
				{Id: uuid.New().String(), Title: "Backend Engineer", CompanyId: testCompanyId, PostedBy: testPosterId},
			}, int64(1), nil)

		mockCompanyRepository := company.NewMockRepository(mockController)
		mockCompanyRepository.
			EXPECT().
			FindCompaniesWithIds(gomock.Any(), []string{testCompanyId}).
			Return([]*company.Document{{Id: testCompanyId, Name: "Acme"}}, nil)

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUsersWithIds(gomock.Any(), []string{testPosterId}).
			Return([]*user.Document{{Id: testPosterId, Name: "Recruiter"}}, nil)

		app := newTestApp(NewHandler(mockRepository, mockCompanyRepository, mockUserRepository, nil))

		req := httptest.NewRequest(fiber.MethodGet, "/api/jobs", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var respBody struct {
			Success bool    `json:"success"`
			Total   int64   `json:"total"`
			Jobs    []*View `json:"jobs"`
		}
		err = json.NewDecoder(resp.Body).Decode(&respBody)
		require.NoError(t, err)
		require.Len(t, respBody.Jobs, 1)
		require.NotNil(t, respBody.Jobs[0].Company)
		assert.Equal(t, "Acme", respBody.Jobs[0].Company.Name)
		require.NotNil(t, respBody.Jobs[0].Poster)
		assert.Equal(t, "Recruiter", respBody.Jobs[0].Poster.Name)
	})
}

func TestHandler_CreateJob(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)
	protect := middleware.Protect(jwtGenerator)

	t.Run("happy path applies defaults", func(t *testing.T) {
		testOwnerId := uuid.New().String()
		testCompanyId := uuid.New().String()

		mockCompanyRepository := company.NewMockRepository(mockController)
		mockCompanyRepository.
			EXPECT().
			FindCompanyWithId(gomock.Any(), testCompanyId).
			Return(&company.Document{Id: testCompanyId, Owner: testOwnerId}, nil)

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			InsertJob(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, document *Document) (string, error) {
				assert.Equal(t, "Remote", document.Location)
				assert.Equal(t, "Full-time", document.Type)
				assert.Equal(t, "Competitive", document.Salary)
				assert.Equal(t, StatusActive, document.Status)
				assert.True(t, document.IsActive)
				assert.Equal(t, testOwnerId, document.PostedBy)
				return document.Id, nil
			})

		app := newTestApp(NewHandler(mockRepository, mockCompanyRepository, nil, protect))

		reqBody, err := json.Marshal(&CreateJobPayload{
			Title:     "Backend Engineer",
			CompanyId: testCompanyId,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/jobs", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, testOwnerId, user.RoleCompany))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("when caller does not own the company should return forbidden", func(t *testing.T) {
		testCompanyId := uuid.New().String()

		mockCompanyRepository := company.NewMockRepository(mockController)
		mockCompanyRepository.
			EXPECT().
			FindCompanyWithId(gomock.Any(), testCompanyId).
			Return(&company.Document{Id: testCompanyId, Owner: uuid.New().String()}, nil)

		app := newTestApp(NewHandler(nil, mockCompanyRepository, nil, protect))

		reqBody, err := json.Marshal(&CreateJobPayload{
			Title:     "Backend Engineer",
			CompanyId: testCompanyId,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/jobs", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), user.RoleCompany))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("when caller is a student should return forbidden", func(t *testing.T) {
		app := newTestApp(NewHandler(nil, nil, nil, protect))

		req := httptest.NewRequest(fiber.MethodPost, "/api/jobs", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), user.RoleStudent))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("when company does not exist should return not found", func(t *testing.T) {
		testCompanyId := uuid.New().String()

		mockCompanyRepository := company.NewMockRepository(mockController)
		mockCompanyRepository.
			EXPECT().
			FindCompanyWithId(gomock.Any(), testCompanyId).
			Return(nil, company.ErrCompanyNotFound)

		app := newTestApp(NewHandler(nil, mockCompanyRepository, nil, protect))

		reqBody, err := json.Marshal(&CreateJobPayload{
			Title:     "Backend Engineer",
			CompanyId: testCompanyId,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/jobs", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), user.RoleCompany))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_UpdateJob(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)
	protect := middleware.Protect(jwtGenerator)

	t.Run("when caller did not post the job should return forbidden", func(t *testing.T) {
		testJobId := uuid.New().String()

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindJobWithId(gomock.Any(), testJobId).
			Return(&Document{Id: testJobId, PostedBy: uuid.New().String()}, nil)

		app := newTestApp(NewHandler(mockRepository, nil, nil, protect))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/jobs/%s", testJobId),
			bytes.NewReader([]byte(`{"title":"Updated Title"}`)),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), user.RoleCompany))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin can update any job", func(t *testing.T) {
		testJobId := uuid.New().String()

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindJobWithId(gomock.Any(), testJobId).
			Return(&Document{Id: testJobId, PostedBy: uuid.New().String()}, nil)
		mockRepository.
			EXPECT().
			UpdateJobById(gomock.Any(), testJobId, gomock.Any()).
			Return(&Document{Id: testJobId, Title: "Updated Title"}, nil)

		app := newTestApp(NewHandler(mockRepository, nil, nil, protect))

		req := httptest.NewRequest(
			fiber.MethodPut,
			fmt.Sprintf("/api/jobs/%s", testJobId),
			bytes.NewReader([]byte(`{"title":"Updated Title"}`)),
		)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, uuid.New().String(), user.RoleAdmin))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestHandler_DeleteJob(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)
	protect := middleware.Protect(jwtGenerator)

	t.Run("happy path", func(t *testing.T) {
		testJobId := uuid.New().String()
		testPosterId := uuid.New().String()

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindJobWithId(gomock.Any(), testJobId).
			Return(&Document{Id: testJobId, PostedBy: testPosterId}, nil)
		mockRepository.
			EXPECT().
			DeleteJobById(gomock.Any(), testJobId).
			Return(nil)

		app := newTestApp(NewHandler(mockRepository, nil, nil, protect))

		req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/api/jobs/%s", testJobId), nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerHeader(t, jwtGenerator, testPosterId, user.RoleCompany))
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
