package jwt_generator

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

const IssuerDefault = "career-portal-api"

var (
	ErrTokenInvalid = errors.New("invalid jwt token")
	ErrTokenExpired = errors.New("expired jwt token")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
