//go:build unit

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"career-portal-api/internal/user"
	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
	"career-portal-api/pkg/jwt_generator"
)

const (
	TestUserName = "Lynicis"
	TestEmail    = "test@test.com"
	TestPassword = "Asdf12345_"
)

var TestJwtConfig = config.JwtConfig{
	AccessSecret:    []byte("test-access-secret"),
	RefreshSecret:   []byte("test-refresh-secret"),
	AccessTokenTTL:  15 * time.Minute,
	RefreshTokenTTL: 168 * time.Hour,
}

func newTestUser(t *testing.T) *user.Document {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	return &user.Document{
		Id:       uuid.New().String(),
		Name:     TestUserName,
		Email:    TestEmail,
		Password: string(hashedPassword),
		Role:     user.RoleStudent,
	}
}

func TestNewService(t *testing.T) {
	authService := NewService(nil, nil)

	assert.Implements(t, (*Service)(nil), authService)
}

func TestService_Register(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)

	t.Run("happy path", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			InsertUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, document *user.Document) (string, error) {
				assert.Equal(t, TestEmail, document.Email)
				assert.Equal(t, user.RoleStudent, document.Role)
				assert.NotEqual(t, TestPassword, document.Password)
				return document.Id, nil
			})

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.Register(context.Background(), &RegisterPayload{
			Name:     TestUserName,
			Email:    "  Test@Test.com ",
			Password: TestPassword,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, session.Tokens.AccessToken)
		assert.NotEmpty(t, session.Tokens.RefreshToken)
		assert.Equal(t, int64(900), session.ExpiresIn)
		assert.Equal(t, TestEmail, session.User.Email)
	})

	t.Run("when status is given for a company account should not persist it", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			InsertUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, document *user.Document) (string, error) {
				assert.Empty(t, document.Status)
				return document.Id, nil
			})

		authService := NewService(mockUserRepository, jwtGenerator)
		_, err := authService.Register(context.Background(), &RegisterPayload{
			Name:     TestUserName,
			Email:    TestEmail,
			Password: TestPassword,
			Role:     user.RoleCompany,
			Status:   "fresher",
		})

		require.NoError(t, err)
	})

	t.Run("when email already registered should return error", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			InsertUser(gomock.Any(), gomock.Any()).
			Return("", user.ErrEmailAlreadyRegistered)

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.Register(context.Background(), &RegisterPayload{
			Name:     TestUserName,
			Email:    TestEmail,
			Password: TestPassword,
		})

		assert.Nil(t, session)
		assert.ErrorIs(t, err, user.ErrEmailAlreadyRegistered)
	})
}

func TestService_Login(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)

	t.Run("happy path", func(t *testing.T) {
		testUser := newTestUser(t)

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithEmail(gomock.Any(), TestEmail).
			Return(testUser, nil)

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.Login(context.Background(), &LoginPayload{
			Email:    TestEmail,
			Password: TestPassword,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, session.Tokens.AccessToken)
		assert.Equal(t, testUser.Id, session.User.Id)
	})

	t.Run("when email is unknown should return unauthorized", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithEmail(gomock.Any(), TestEmail).
			Return(nil, user.ErrUserNotFound)

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.Login(context.Background(), &LoginPayload{
			Email:    TestEmail,
			Password: TestPassword,
		})

		assert.Nil(t, session)

		var customError *cerror.CustomError
		require.ErrorAs(t, err, &customError)
		assert.Equal(t, fiber.StatusUnauthorized, customError.HttpStatusCode)
		assert.Equal(t, MessageInvalidCredentials, customError.Message)
	})

	t.Run("when password is wrong should return the same unauthorized error", func(t *testing.T) {
		testUser := newTestUser(t)

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithEmail(gomock.Any(), TestEmail).
			Return(testUser, nil)

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.Login(context.Background(), &LoginPayload{
			Email:    TestEmail,
			Password: "wrong-password",
		})

		assert.Nil(t, session)

		var customError *cerror.CustomError
		require.ErrorAs(t, err, &customError)
		assert.Equal(t, fiber.StatusUnauthorized, customError.HttpStatusCode)
		assert.Equal(t, MessageInvalidCredentials, customError.Message)
	})
}

func TestService_Refresh(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)

	t.Run("happy path", func(t *testing.T) {
		testUser := newTestUser(t)

		refreshToken, err := jwtGenerator.GenerateRefreshToken(testUser.Id, testUser.Role)
		require.NoError(t, err)

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(gomock.Any(), testUser.Id).
			Return(testUser, nil)

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.Refresh(context.Background(), refreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, session.Tokens.AccessToken)
		assert.NotEqual(t, refreshToken, session.Tokens.RefreshToken)
	})

	t.Run("when refresh token is garbage should return unauthorized", func(t *testing.T) {
		authService := NewService(nil, jwtGenerator)
		session, err := authService.Refresh(context.Background(), "abcd.abcd.abcd")

		assert.Nil(t, session)

		var customError *cerror.CustomError
		require.ErrorAs(t, err, &customError)
		assert.Equal(t, fiber.StatusUnauthorized, customError.HttpStatusCode)
		assert.Equal(t, MessageInvalidToken, customError.Message)
	})

	t.Run("when user no longer exists should return unauthorized", func(t *testing.T) {
		testUser := newTestUser(t)

		refreshToken, err := jwtGenerator.GenerateRefreshToken(testUser.Id, testUser.Role)
		require.NoError(t, err)

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(gomock.Any(), testUser.Id).
			Return(nil, user.ErrUserNotFound)

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.Refresh(context.Background(), refreshToken)

		assert.Nil(t, session)

		var customError *cerror.CustomError
		require.ErrorAs(t, err, &customError)
		assert.Equal(t, fiber.StatusUnauthorized, customError.HttpStatusCode)
	})
}

func TestService_ForgotPassword(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)

	t.Run("happy path", func(t *testing.T) {
		testUser := newTestUser(t)

		var storedHash string
		var storedExpiry time.Time

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithEmail(gomock.Any(), TestEmail).
			Return(testUser, nil)
		mockUserRepository.
			EXPECT().
			SetResetToken(gomock.Any(), testUser.Id, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, tokenHash string, expiresAt time.Time) error {
				storedHash = tokenHash
				storedExpiry = expiresAt
				return nil
			})

		authService := NewService(mockUserRepository, jwtGenerator)
		ticket, err := authService.ForgotPassword(context.Background(), TestEmail)

		require.NoError(t, err)
		assert.NotEmpty(t, ticket)
		assert.NotEqual(t, ticket, storedHash)
		assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), storedExpiry, time.Minute)
	})

	t.Run("when email is unknown should return empty ticket without error", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithEmail(gomock.Any(), TestEmail).
			Return(nil, user.ErrUserNotFound)

		authService := NewService(mockUserRepository, jwtGenerator)
		ticket, err := authService.ForgotPassword(context.Background(), TestEmail)

		require.NoError(t, err)
		assert.Empty(t, ticket)
	})
}

func TestService_ResetPassword(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := jwt_generator.NewJwtGenerator(TestJwtConfig)

	t.Run("happy path", func(t *testing.T) {
		testUser := newTestUser(t)
		ticket := "valid-ticket"

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithResetToken(gomock.Any(), hashTicket(ticket)).
			Return(testUser, nil)
		mockUserRepository.
			EXPECT().
			UpdatePassword(gomock.Any(), testUser.Id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, hashedPassword string) error {
				assert.NotEqual(t, "NewPassword1_", hashedPassword)
				return nil
			})

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.ResetPassword(context.Background(), ticket, "NewPassword1_")

		require.NoError(t, err)
		assert.NotEmpty(t, session.Tokens.AccessToken)
	})

	t.Run("when ticket is unknown should return bad request without mutation", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithResetToken(gomock.Any(), gomock.Any()).
			Return(nil, user.ErrUserNotFound)

		authService := NewService(mockUserRepository, jwtGenerator)
		session, err := authService.ResetPassword(context.Background(), "unknown-ticket", "NewPassword1_")

		assert.Nil(t, session)

		var customError *cerror.CustomError
		require.ErrorAs(t, err, &customError)
		assert.Equal(t, fiber.StatusBadRequest, customError.HttpStatusCode)
		assert.Equal(t, MessageInvalidResetToken, customError.Message)
	})
}
