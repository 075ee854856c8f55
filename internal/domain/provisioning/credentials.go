package provisioning

import "strings"

type Credentials struct {
	Email    string
	Password string
}

// CredentialPolicy derives initial credentials from enrollment identifiers.
// Passwords are deterministic (school code + "@" + identifier); the admin
// credential hand-off workflow depends on that exact observable value.
type CredentialPolicy struct {
	SchoolCode  string
	EmailDomain string
}

// Derive never mutates its inputs and always returns a non-empty password
// for a non-empty identifier. Students without a supplied email get
// <identifier>@<domain>, lower-cased; teacher emails pass through unchanged.
func (p CredentialPolicy) Derive(role Role, identifier, suppliedEmail string) Credentials {
	creds := Credentials{
		Email:    suppliedEmail,
		Password: p.SchoolCode + "@" + identifier,
	}
	if role == RoleStudent && creds.Email == "" {
		creds.Email = strings.ToLower(identifier + "@" + p.EmailDomain)
	}
	return creds
}
