package provisioning

import "errors"

var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrNotAdmin         = errors.New("token does not belong to an admin")
)
