package provisioning

import (
	"context"
	"fmt"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

type CreateUserInput struct {
	Row domain.RawRow
}

type CreateUserOutput struct {
	UID      string      `json:"uid"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	Name     string      `json:"name"`
}

type CreateUser interface {
	Execute(ctx context.Context, in CreateUserInput) (CreateUserOutput, error)
}

type createUser struct {
	provisioner recordProvisioner
	policy      domain.CredentialPolicy
}

func NewCreateUser(provisioner recordProvisioner, policy domain.CredentialPolicy) CreateUser {
	return &createUser{provisioner: provisioner, policy: policy}
}

func (uc *createUser) Execute(ctx context.Context, in CreateUserInput) (CreateUserOutput, error) {
	row := NormalizeRow(in.Row, "")

	rec, err := ValidateRow(row)
	if err != nil {
		return CreateUserOutput{}, err
	}

	creds := uc.policy.Derive(rec.AccountRole(), rec.Identifier(), rec.SuppliedEmail())
	outcome := uc.provisioner.Provision(ctx, rec, creds, row)
	if !outcome.Succeeded() {
		return CreateUserOutput{}, fmt.Errorf("%w: %s", ErrProvisionFailed, outcome.Reason)
	}

	return CreateUserOutput{
		UID:      outcome.User.UID,
		Email:    outcome.User.Email,
		Password: outcome.User.GeneratedPassword,
		Role:     outcome.User.Role,
		Name:     outcome.User.Name,
	}, nil
}
