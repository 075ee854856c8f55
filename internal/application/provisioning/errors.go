package provisioning

import "errors"

var (
	ErrProvisionFailed = errors.New("failed to provision user")
	ErrListUsers       = errors.New("failed to list users")
)
