package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

// Store is an injected in-memory identity/document store: the swap-in
// replacement for a real backend in tests and local development. Lifecycle
// is scoped to the process; construction starts empty.
type Store struct {
	mu         sync.Mutex
	byEmail    map[string]domain.Identity
	profiles   map[string]domain.ProfileDocument
	profileIDs []string
}

func New() *Store {
	return &Store{
		byEmail:  map[string]domain.Identity{},
		profiles: map[string]domain.ProfileDocument{},
	}
}

func (s *Store) FindByEmail(ctx context.Context, email string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, ok := s.byEmail[email]
	if !ok {
		return domain.Identity{}, domain.ErrIdentityNotFound
	}
	return identity, nil
}

func (s *Store) Create(ctx context.Context, in domain.NewIdentity) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[in.Email]; ok {
		return domain.Identity{}, fmt.Errorf("identity %s already exists", in.Email)
	}

	identity := domain.Identity{
		UID:         uuid.NewString(),
		Email:       in.Email,
		DisplayName: in.DisplayName,
	}
	s.byEmail[in.Email] = identity
	return identity, nil
}

func (s *Store) Write(ctx context.Context, uid string, doc domain.ProfileDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[uid]; !ok {
		s.profileIDs = append(s.profileIDs, uid)
	}
	copied := make(domain.ProfileDocument, len(doc))
	for key, value := range doc {
		copied[key] = value
	}
	s.profiles[uid] = copied
	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]domain.StoredProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.StoredProfile, 0, limit)
	for _, uid := range s.profileIDs {
		if len(out) >= limit {
			break
		}
		out = append(out, domain.StoredProfile{ID: uid, Fields: s.profiles[uid]})
	}
	return out, nil
}
