package auth

import "context"

// AuthVerifier valida un bearer token y devuelve los claims (user_id, role).
// En modo dev no hay verifier y el middleware lee los headers de debug.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
