package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

// TokenVerifier checks bearer ID tokens for the admin capability.
type TokenVerifier struct {
	auth *auth.Client
}

func NewTokenVerifier(client *Client) *TokenVerifier {
	return &TokenVerifier{auth: client.Auth}
}

func (v *TokenVerifier) VerifyAdmin(ctx context.Context, token string) error {
	decoded, err := v.auth.VerifyIDToken(ctx, token)
	if err != nil {
		return fmt.Errorf("verify id token: %w", err)
	}

	if role, _ := decoded.Claims["role"].(string); role != "admin" {
		return domain.ErrNotAdmin
	}
	return nil
}
