package auth

import "context"

// AuthVerifier resuelve un Bearer token a la identidad del dueño.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
