package utils

import (
	"errors"
	"strconv"
	"time"

	"credvia/internal/config"
	"credvia/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
	tokenIssuer     = "credvia-api"
)

func jwtSecret() ([]byte, error) {
	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}
	return []byte(secret), nil
}

// GenerateTokens signs an access and a refresh token for the given claims.
func GenerateTokens(claims *models.UserClaims) (accessToken string, refreshToken string, err error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", "", err
	}

	now := time.Now()

	sign := func(ttl time.Duration) (string, error) {
		tokenClaims := models.UserClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    tokenIssuer,
				Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
			},
			UserID:       claims.UserID,
			Email:        claims.Email,
			Role:         claims.Role,
			TokenVersion: claims.TokenVersion,
		}
		return jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims).SignedString(secret)
	}

	if accessToken, err = sign(accessTokenTTL); err != nil {
		return "", "", err
	}
	if refreshToken, err = sign(refreshTokenTTL); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ParseToken parses and validates a signed token string.
func ParseToken(tokenStr string) (*models.UserClaims, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
