package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload attached to every authenticated request.
// TokenVersion must match the user's current version or the token is
// treated as revoked.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	TokenVersion int    `json:"token_version"`
}
