package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

const usersCollection = "users"

// ProfileStore adapts a Firestore collection to the domain profile port.
type ProfileStore struct {
	db         *firestore.Client
	collection string
}

func NewProfileStore(client *Client) *ProfileStore {
	return &ProfileStore{db: client.Firestore, collection: usersCollection}
}

func (s *ProfileStore) Write(ctx context.Context, uid string, doc domain.ProfileDocument) error {
	if _, err := s.db.Collection(s.collection).Doc(uid).Set(ctx, map[string]any(doc)); err != nil {
		return fmt.Errorf("write profile %s: %w", uid, err)
	}
	return nil
}

// List returns up to limit profile documents, unordered. Sorting happens in
// the application layer; ordering here would require a composite index.
func (s *ProfileStore) List(ctx context.Context, limit int) ([]domain.StoredProfile, error) {
	snapshots, err := s.db.Collection(s.collection).Limit(limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	profiles := make([]domain.StoredProfile, 0, len(snapshots))
	for _, snapshot := range snapshots {
		profiles = append(profiles, domain.StoredProfile{
			ID:     snapshot.Ref.ID,
			Fields: snapshot.Data(),
		})
	}
	return profiles, nil
}
