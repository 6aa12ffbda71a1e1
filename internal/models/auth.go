package models

import "github.com/golang-jwt/jwt/v5"

// Roles recognised by the role gate.
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
)

// JWTClaims carries the identity minted by the external auth system.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
