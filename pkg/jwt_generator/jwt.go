package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"career-portal-api/pkg/config"
)

type JwtGenerator interface {
	GenerateAccessToken(userId, role string) (string, error)
	GenerateRefreshToken(userId, role string) (string, error)
	VerifyAccessToken(rawJwtToken string) (*Claims, error)
	VerifyRefreshToken(rawJwtToken string) (*Claims, error)
	AccessTokenTTL() time.Duration
	RefreshTokenTTL() time.Duration
}

type jwtGenerator struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewJwtGenerator(jwtConfig config.JwtConfig) JwtGenerator {
	refreshSecret := jwtConfig.RefreshSecret
	if len(refreshSecret) == 0 {
		// Weaker-than-ideal default carried over from the source system:
		// without a dedicated refresh secret one is derived from the access
		// secret.
		refreshSecret = append(append([]byte{}, jwtConfig.AccessSecret...), []byte("_refresh")...)
	}

	return &jwtGenerator{
		accessSecret:    jwtConfig.AccessSecret,
		refreshSecret:   refreshSecret,
		accessTokenTTL:  jwtConfig.AccessTokenTTL,
		refreshTokenTTL: jwtConfig.RefreshTokenTTL,
	}
}

func (jwtGenerator *jwtGenerator) GenerateAccessToken(userId, role string) (string, error) {
	return jwtGenerator.generate(userId, role, jwtGenerator.accessTokenTTL, jwtGenerator.accessSecret)
}

func (jwtGenerator *jwtGenerator) GenerateRefreshToken(userId, role string) (string, error) {
	return jwtGenerator.generate(userId, role, jwtGenerator.refreshTokenTTL, jwtGenerator.refreshSecret)
}

func (jwtGenerator *jwtGenerator) generate(
	userId, role string,
	tokenTTL time.Duration,
	secret []byte,
) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userId,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) VerifyAccessToken(rawJwtToken string) (*Claims, error) {
	return jwtGenerator.verify(rawJwtToken, jwtGenerator.accessSecret)
}

func (jwtGenerator *jwtGenerator) VerifyRefreshToken(rawJwtToken string) (*Claims, error) {
	return jwtGenerator.verify(rawJwtToken, jwtGenerator.refreshSecret)
}

func (jwtGenerator *jwtGenerator) verify(rawJwtToken string, secret []byte) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}

		return secret, nil
	})
	if err != nil {
		var validationError *jwt.ValidationError
		if errors.As(err, &validationError) &&
			validationError.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}

		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, ErrTokenInvalid
	}

	return &claims, nil
}

func (jwtGenerator *jwtGenerator) AccessTokenTTL() time.Duration {
	return jwtGenerator.accessTokenTTL
}

func (jwtGenerator *jwtGenerator) RefreshTokenTTL() time.Duration {
	return jwtGenerator.refreshTokenTTL
}
