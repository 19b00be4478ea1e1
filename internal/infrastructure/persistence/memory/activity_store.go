package memory

import (
	"context"
	"sync"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
)

// ActivityStore is an in-memory ActivityRepository.
type ActivityStore struct {
	mu    sync.RWMutex
	items []domain.Activity
}

// NewActivityStore returns an empty activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{}
}

func (s *ActivityStore) Create(ctx context.Context, a *domain.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *a)
	return nil
}

// List returns activities matching the filter; empty filter fields match everything.
func (s *ActivityStore) List(ctx context.Context, filter ports.ActivityFilter) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Activity, 0, len(s.items))
	for _, a := range s.items {
		if filter.ProjectID != "" && a.ProjectID != filter.ProjectID {
			continue
		}
		if filter.CaregiverID != "" && a.CaregiverID != filter.CaregiverID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

var _ ports.ActivityRepository = (*ActivityStore)(nil)
