package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"career-portal-api/internal/user"
	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/jwt_generator"
)

const resetTokenTTL = time.Hour

type Service interface {
	Register(ctx context.Context, payload *RegisterPayload) (*Session, error)
	Login(ctx context.Context, payload *LoginPayload) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	CurrentUser(ctx context.Context, userId string) (*user.Document, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, ticket, newPassword string) (*Session, error)
}

type service struct {
	userRepository user.Repository
	jwtGenerator   jwt_generator.JwtGenerator
}

func NewService(userRepository user.Repository, jwtGenerator jwt_generator.JwtGenerator) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
	}
}

func (s *service) Register(ctx context.Context, payload *RegisterPayload) (*Session, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	// The role is taken verbatim from the request; there is no approval step
	// for elevated roles.
	role := payload.Role
	if role == "" {
		role = user.RoleStudent
	}

	document := &user.Document{
		Id:        uuid.New().String(),
		Name:      payload.Name,
		Email:     normalizeEmail(payload.Email),
		Password:  string(hashedPassword),
		Role:      role,
		Phone:     payload.Phone,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if role == user.RoleStudent {
		document.Status = payload.Status
	}

	_, err = s.userRepository.InsertUser(ctx, document)
	if err != nil {
		return nil, err
	}

	return s.issueSession(document)
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*Session, error) {
	foundUser, err := s.userRepository.FindUserWithEmail(ctx, normalizeEmail(payload.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, cerror.NewUnauthorizedError(MessageInvalidCredentials)
		}

		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(payload.Password))
	if err != nil {
		// Identical message for unknown email and wrong password.
		return nil, cerror.NewUnauthorizedError(MessageInvalidCredentials)
	}

	return s.issueSession(foundUser)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	claims, err := s.jwtGenerator.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, cerror.NewUnauthorizedError(MessageInvalidToken)
	}

	foundUser, err := s.userRepository.FindUserWithId(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, cerror.NewUnauthorizedError("user not found")
		}

		return nil, err
	}

	// Rotation is advisory: a brand-new pair is issued but the old refresh
	// token stays cryptographically valid until its own expiry.
	return s.issueSession(foundUser)
}

func (s *service) CurrentUser(ctx context.Context, userId string) (*user.Document, error) {
	return s.userRepository.FindUserWithId(ctx, userId)
}

func (s *service) ForgotPassword(ctx context.Context, email string) (string, error) {
	foundUser, err := s.userRepository.FindUserWithEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", nil
		}

		return "", err
	}

	ticketBytes := make([]byte, 32)
	_, err = rand.Read(ticketBytes)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate reset token",
			zap.Error(err),
		)
	}

	ticket := hex.EncodeToString(ticketBytes)
	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	err = s.userRepository.SetResetToken(ctx, foundUser.Id, hashTicket(ticket), expiresAt)
	if err != nil {
		return "", err
	}

	return ticket, nil
}

func (s *service) ResetPassword(ctx context.Context, ticket, newPassword string) (*Session, error) {
	foundUser, err := s.userRepository.FindUserWithResetToken(ctx, hashTicket(ticket))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, cerror.NewError(
				fiber.StatusBadRequest,
				MessageInvalidResetToken,
			).SetSeverity(zap.WarnLevel)
		}

		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	err = s.userRepository.UpdatePassword(ctx, foundUser.Id, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	return s.issueSession(foundUser)
}

func (s *service) issueSession(document *user.Document) (*Session, error) {
	accessToken, err := s.jwtGenerator.GenerateAccessToken(document.Id, document.Role)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate access token",
			zap.Error(err),
		)
	}

	refreshToken, err := s.jwtGenerator.GenerateRefreshToken(document.Id, document.Role)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate refresh token",
			zap.Error(err),
		)
	}

	return &Session{
		Tokens: jwt_generator.Tokens{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
		ExpiresIn: int64(s.jwtGenerator.AccessTokenTTL().Seconds()),
		User:      document,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashTicket(ticket string) string {
	sum := sha256.Sum256([]byte(ticket))
	return hex.EncodeToString(sum[:])
}
