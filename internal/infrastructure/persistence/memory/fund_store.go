package memory

import (
	"context"
	"sync"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
)

// FundStore is an in-memory FundRepository. Funds are immutable after creation.
type FundStore struct {
	mu    sync.RWMutex
	items []domain.Fund
}

// NewFundStore returns an empty fund store.
func NewFundStore() *FundStore {
	return &FundStore{}
}

func (s *FundStore) Create(ctx context.Context, f *domain.Fund) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *f)
	return nil
}

// List returns funds matching the filter; empty filter fields match everything.
func (s *FundStore) List(ctx context.Context, filter ports.FundFilter) ([]domain.Fund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Fund, 0, len(s.items))
	for _, f := range s.items {
		if filter.ProjectID != "" && f.ProjectID != filter.ProjectID {
			continue
		}
		if filter.CaregiverID != "" && f.CaregiverID != filter.CaregiverID {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

var _ ports.FundRepository = (*FundStore)(nil)
