package provisioning

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

type BulkProvisionInput struct {
	// Role is the batch-selected role attached to rows that carry none.
	Role string
	Rows []domain.RawRow
}

type BulkProvisionOutput struct {
	BatchID string
	Result  domain.BatchResult
}

type BulkProvisionUsers interface {
	Execute(ctx context.Context, in BulkProvisionInput) (BulkProvisionOutput, error)
}

type recordProvisioner interface {
	Provision(ctx context.Context, rec domain.Record, creds domain.Credentials, row domain.RawRow) domain.Outcome
}

type bulkProvisionUsers struct {
	provisioner recordProvisioner
	policy      domain.CredentialPolicy
	log         *logrus.Logger
}

func NewBulkProvisionUsers(provisioner recordProvisioner, policy domain.CredentialPolicy, log *logrus.Logger) BulkProvisionUsers {
	return &bulkProvisionUsers{provisioner: provisioner, policy: policy, log: log}
}

// Execute processes records sequentially in input order. That ordering is a
// contract, not an accident of control flow: a repeated email later in the
// batch must observe the earlier creation through the existence check, and
// the external store is never hit by more than one in-flight call per batch.
// Every input row yields exactly one outcome.
func (uc *bulkProvisionUsers) Execute(ctx context.Context, in BulkProvisionInput) (BulkProvisionOutput, error) {
	batchID := uuid.NewString()
	rows := NormalizeRows(in.Rows, in.Role)

	result := domain.BatchResult{
		Successes: make([]domain.Outcome, 0, len(rows)),
		Failures:  make([]domain.Outcome, 0),
	}

	for _, row := range rows {
		outcome := uc.processRow(ctx, row)
		if outcome.Succeeded() {
			result.Successes = append(result.Successes, outcome)
		} else {
			result.Failures = append(result.Failures, outcome)
		}
	}

	result.Summary = domain.BatchSummary{
		Total:        len(rows),
		SuccessCount: len(result.Successes),
		FailureCount: len(result.Failures),
	}

	uc.log.WithFields(logrus.Fields{
		"batch_id": batchID,
		"total":    result.Summary.Total,
		"success":  result.Summary.SuccessCount,
		"failure":  result.Summary.FailureCount,
	}).Info("bulk provisioning finished")

	return BulkProvisionOutput{BatchID: batchID, Result: result}, nil
}

func (uc *bulkProvisionUsers) processRow(ctx context.Context, row domain.RawRow) domain.Outcome {
	rec, err := ValidateRow(row)
	if err != nil {
		return domain.FailureOutcome(err.Error(), row)
	}

	creds := uc.policy.Derive(rec.AccountRole(), rec.Identifier(), rec.SuppliedEmail())
	return uc.provisioner.Provision(ctx, rec, creds, row)
}
