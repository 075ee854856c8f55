package provisioning

import (
	"context"
	"fmt"
	"sort"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

const defaultListLimit = 100

type ListUsersInput struct {
	Limit int
}

type ListedUser struct {
	ID     string
	Fields domain.ProfileDocument
}

type ListUsersOutput struct {
	Users []ListedUser
}

type ListUsers interface {
	Execute(ctx context.Context, in ListUsersInput) (ListUsersOutput, error)
}

type listUsers struct {
	profiles domain.ProfileStore
}

func NewListUsers(profiles domain.ProfileStore) ListUsers {
	return &listUsers{profiles: profiles}
}

func (uc *listUsers) Execute(ctx context.Context, in ListUsersInput) (ListUsersOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	profiles, err := uc.profiles.List(ctx, limit)
	if err != nil {
		return ListUsersOutput{}, fmt.Errorf("%w: %v", ErrListUsers, err)
	}

	users := make([]ListedUser, 0, len(profiles))
	for _, profile := range profiles {
		users = append(users, ListedUser{ID: profile.ID, Fields: profile.Fields})
	}

	// Newest first. The store returns documents unordered; createdAt is
	// RFC 3339, so lexicographic comparison is chronological.
	sort.SliceStable(users, func(i, j int) bool {
		return createdAt(users[i]) > createdAt(users[j])
	})

	return ListUsersOutput{Users: users}, nil
}

func createdAt(user ListedUser) string {
	value, _ := user.Fields["createdAt"].(string)
	return value
}
