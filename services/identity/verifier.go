// Package identity resolves bearer tokens to signed-in patients.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medigen/models"
	"medigen/utils"

	"firebase.google.com/go/v4/auth"
)

// Verifier checks a raw bearer token with the identity provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (models.Identity, time.Time, error)
	// Revoke ends every session of uid at the provider, where supported.
	Revoke(ctx context.Context, uid string) error
}

// FirebaseVerifier accepts Firebase ID tokens.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (models.Identity, time.Time, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return models.Identity{}, time.Time{}, fmt.Errorf("firebase: %w", err)
	}
	email, _ := tok.Claims["email"].(string)
	return models.Identity{UID: tok.UID, Email: email}, time.Unix(tok.Expires, 0), nil
}

func (v *FirebaseVerifier) Revoke(ctx context.Context, uid string) error {
	return v.client.RevokeRefreshTokens(ctx, uid)
}

// TokenVerifier accepts HS256 tokens signed with a shared secret. It backs
// local development where no Firebase project is configured.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required when Firebase is not configured")
	}
	return &TokenVerifier{secret: []byte(secret)}, nil
}

// Issue mints a token for uid.
func (v *TokenVerifier) Issue(uid, email string, ttl time.Duration) (string, error) {
	return utils.GenerateToken(v.secret, uid, email, ttl)
}

func (v *TokenVerifier) Verify(_ context.Context, token string) (models.Identity, time.Time, error) {
	claims, err := utils.ValidateToken(v.secret, token)
	if err != nil {
		return models.Identity{}, time.Time{}, err
	}
	return models.Identity{UID: claims.Subject, Email: claims.Email}, claims.ExpiresAt, nil
}

// Revoke is a no-op; sign-out relies on the revocation list.
func (v *TokenVerifier) Revoke(context.Context, string) error { return nil }
