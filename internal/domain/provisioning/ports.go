package provisioning

import "context"

type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

type NewIdentity struct {
	Email       string
	Password    string
	DisplayName string
}

// ProfileDocument is the schemaless per-user document persisted alongside an
// identity. Field sets differ by role, so it stays a map at this boundary.
type ProfileDocument map[string]any

type StoredProfile struct {
	ID     string
	Fields ProfileDocument
}

// IdentityStore is the external authentication-identity provider.
// FindByEmail returns ErrIdentityNotFound when no identity exists for the
// address; any other error is an infrastructure fault.
type IdentityStore interface {
	FindByEmail(ctx context.Context, email string) (Identity, error)
	Create(ctx context.Context, in NewIdentity) (Identity, error)
}

// ProfileStore is the external durable document store for user profiles.
type ProfileStore interface {
	Write(ctx context.Context, uid string, doc ProfileDocument) error
	List(ctx context.Context, limit int) ([]StoredProfile, error)
}

// TokenVerifier answers the only question this service asks of the auth
// layer: does the bearer token belong to an authenticated admin.
type TokenVerifier interface {
	VerifyAdmin(ctx context.Context, token string) error
}
