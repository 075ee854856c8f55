package provisioning

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

const defaultStoreCallTimeout = 10 * time.Second

// RecordProvisioner creates one account against the external
// identity/document store: existence check, identity creation, profile
// write. Every failure is scoped to the single record. A profile-write
// failure leaves the identity in place; the existence check catches the
// orphan on re-upload, so no duplicate identity can result.
type RecordProvisioner struct {
	identities  domain.IdentityStore
	profiles    domain.ProfileStore
	schoolCode  string
	callTimeout time.Duration
	now         func() time.Time
}

func NewRecordProvisioner(identities domain.IdentityStore, profiles domain.ProfileStore, schoolCode string, callTimeout time.Duration) *RecordProvisioner {
	if callTimeout <= 0 {
		callTimeout = defaultStoreCallTimeout
	}
	return &RecordProvisioner{
		identities:  identities,
		profiles:    profiles,
		schoolCode:  schoolCode,
		callTimeout: callTimeout,
		now:         time.Now,
	}
}

func (p *RecordProvisioner) Provision(ctx context.Context, rec domain.Record, creds domain.Credentials, row domain.RawRow) domain.Outcome {
	_, err := p.findByEmail(ctx, creds.Email)
	if err == nil {
		return domain.FailureOutcome(fmt.Sprintf("User with email %s already exists", creds.Email), row)
	}
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		return domain.FailureOutcome(err.Error(), row)
	}

	identity, err := p.createIdentity(ctx, domain.NewIdentity{
		Email:       creds.Email,
		Password:    creds.Password,
		DisplayName: rec.DisplayName(),
	})
	if err != nil {
		return domain.FailureOutcome(err.Error(), row)
	}

	if err := p.writeProfile(ctx, identity.UID, p.profileDocument(rec, creds.Email)); err != nil {
		return domain.FailureOutcome(err.Error(), row)
	}

	return domain.SuccessOutcome(domain.ProvisionedUser{
		UID:               identity.UID,
		Email:             creds.Email,
		GeneratedPassword: creds.Password,
		Role:              rec.AccountRole(),
		Name:              rec.DisplayName(),
	}, row)
}

// profileDocument assembles the durable profile. The generated password is
// deliberately absent.
func (p *RecordProvisioner) profileDocument(rec domain.Record, email string) domain.ProfileDocument {
	doc := domain.ProfileDocument{
		"role":      string(rec.AccountRole()),
		"schoolId":  p.schoolCode,
		"name":      rec.DisplayName(),
		"email":     email,
		"createdAt": p.now().UTC().Format(time.RFC3339),
		"phone":     nullable(rec.Phone()),
	}
	for key, value := range rec.RoleFields() {
		doc[key] = value
	}
	return doc
}

func (p *RecordProvisioner) findByEmail(ctx context.Context, email string) (domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.identities.FindByEmail(ctx, email)
}

func (p *RecordProvisioner) createIdentity(ctx context.Context, in domain.NewIdentity) (domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.identities.Create(ctx, in)
}

func (p *RecordProvisioner) writeProfile(ctx context.Context, uid string, doc domain.ProfileDocument) error {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.profiles.Write(ctx, uid, doc)
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
