package auth

import (
	"career-portal-api/internal/user"
	"career-portal-api/pkg/jwt_generator"
)

const RefreshTokenCookieName = "refreshToken"

const (
	MessageInvalidCredentials = "invalid email or password"
	MessageMissingToken       = "no refresh token provided"
	MessageInvalidToken       = "invalid or expired refresh token"
	MessageInvalidResetToken  = "invalid or expired reset token"

	// The forgot-password response is identical whether or not the email
	// exists, so the endpoint cannot be used to enumerate accounts.
	MessageResetLinkSent = "if that email exists, a reset link has been sent"
)

type RegisterPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,gte=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=student admin company"`
	Status   string `json:"status" validate:"omitempty,oneof=fresher experienced"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenPayload struct {
	RefreshToken string `json:"refreshToken"`
}

type ForgotPasswordPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordPayload struct {
	NewPassword string `json:"newPassword" validate:"required,gte=6"`
}

// Session is an issued token pair plus the authenticated user it belongs to.
type Session struct {
	Tokens    jwt_generator.Tokens
	ExpiresIn int64
	User      *user.Document
}
