// Package firebaseauth implements the TokenVerifier port against Firebase
// Authentication. The frontend signs users in with Firebase and sends the ID
// token as a bearer credential; this adapter verifies the token and extracts
// the principal email.
package firebaseauth

import (
	"context"
	"encoding/base64"
	"fmt"

	"zapshift/internal/core/ports"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Verifier validates Firebase ID tokens. Implements ports.TokenVerifier.
type Verifier struct {
	client *auth.Client
}

// NewVerifier initializes the Firebase app from a base64-encoded service
// account key and prepares the auth client.
func NewVerifier(ctx context.Context, serviceKeyBase64 string) (*Verifier, error) {
	serviceKey, err := base64.StdEncoding.DecodeString(serviceKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("decode firebase service key: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(serviceKey))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase auth client: %w", err)
	}

	return &Verifier{client: client}, nil
}

// Verify checks the ID token signature and expiry and returns the verified
// email claim. Any verification failure, and a token without an email claim,
// maps to ports.ErrTokenInvalid; callers never see Firebase error details.
func (v *Verifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", ports.ErrTokenInvalid
	}

	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		return "", ports.ErrTokenInvalid
	}

	return email, nil
}
