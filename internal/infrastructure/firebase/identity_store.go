package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

// IdentityStore adapts Firebase Auth to the domain identity port.
type IdentityStore struct {
	auth *auth.Client
}

func NewIdentityStore(client *Client) *IdentityStore {
	return &IdentityStore{auth: client.Auth}
}

func (s *IdentityStore) FindByEmail(ctx context.Context, email string) (domain.Identity, error) {
	record, err := s.auth.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return domain.Identity{}, domain.ErrIdentityNotFound
		}
		return domain.Identity{}, fmt.Errorf("lookup identity %s: %w", email, err)
	}

	return domain.Identity{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}

func (s *IdentityStore) Create(ctx context.Context, in domain.NewIdentity) (domain.Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(in.Email).
		Password(in.Password).
		DisplayName(in.DisplayName)

	record, err := s.auth.CreateUser(ctx, params)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("create identity %s: %w", in.Email, err)
	}

	return domain.Identity{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}
