package memory

import (
	"context"
	"sync"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
)

// CaregiverStore is an in-memory CaregiverRepository. Records are append-only;
// the core defines no update or delete operation for caregivers.
type CaregiverStore struct {
	mu    sync.RWMutex
	items []domain.Caregiver
}

// NewCaregiverStore returns an empty caregiver store.
func NewCaregiverStore() *CaregiverStore {
	return &CaregiverStore{}
}

func (s *CaregiverStore) Create(ctx context.Context, c *domain.Caregiver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *c)
	return nil
}

// GetByID returns a copy of the caregiver, or nil when absent.
func (s *CaregiverStore) GetByID(ctx context.Context, id string) (*domain.Caregiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			c := s.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

// List returns caregivers, narrowed to one project when projectID is non-empty.
func (s *CaregiverStore) List(ctx context.Context, projectID string) ([]domain.Caregiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Caregiver, 0, len(s.items))
	for _, c := range s.items {
		if projectID != "" && c.ProjectID != projectID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *CaregiverStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

var _ ports.CaregiverRepository = (*CaregiverStore)(nil)
