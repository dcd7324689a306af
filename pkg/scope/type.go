package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the verified token payload placed on the request context.
type Payload struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Manager verifies bearer tokens.
type Manager interface {
	Verify(token string) (Payload, error)
}

type payloadCtxKey struct{}
type scopeCtxKey struct{}
