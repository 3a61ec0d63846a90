package ports

import (
	"context"
	"errors"
)

// ErrTokenInvalid is returned by Verify for missing, malformed, or expired
// identity tokens.
var ErrTokenInvalid = errors.New("identity token is invalid")

// TokenVerifier is the identity-verification capability. It turns an opaque
// bearer token into the verified principal email, or ErrTokenInvalid.
// Role checks are not part of this capability; they go through the user store.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}
