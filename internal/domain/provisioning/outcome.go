package provisioning

// ProvisionedUser is the credential payload for one successfully created
// account. The plaintext password lives only here, in the single response
// that reports it; it is never written to the profile document or logged.
type ProvisionedUser struct {
	UID               string
	Email             string
	GeneratedPassword string
	Role              Role
	Name              string
}

// Outcome is the per-record result of provisioning: either User is set, or
// Reason explains the failure. Row is always the original uploaded row.
type Outcome struct {
	User   *ProvisionedUser
	Reason string
	Row    RawRow
}

func (o Outcome) Succeeded() bool { return o.User != nil }

func SuccessOutcome(user ProvisionedUser, row RawRow) Outcome {
	return Outcome{User: &user, Row: row}
}

func FailureOutcome(reason string, row RawRow) Outcome {
	return Outcome{Reason: reason, Row: row}
}

type BatchSummary struct {
	Total        int
	SuccessCount int
	FailureCount int
}

type BatchResult struct {
	Summary   BatchSummary
	Successes []Outcome
	Failures  []Outcome
}
