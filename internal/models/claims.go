package models

import "github.com/golang-jwt/jwt"

// Claims are the JWT claims issued by the auth service and consumed here.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}
