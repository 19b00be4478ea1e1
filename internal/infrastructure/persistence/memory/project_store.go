package memory

import (
	"context"
	"sync"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
	domerrors "github.com/mubarek-tria/CIEt/internal/domain/errors"
)

// ProjectStore is an in-memory ProjectRepository suitable for single-instance
// deployment. Any datastore honoring the same uniqueness/lookup contract can
// replace it. The code-uniqueness check and the insert happen under one write
// lock, so two concurrent creates with the same code cannot both succeed.
type ProjectStore struct {
	mu    sync.RWMutex
	items []domain.Project
}

// NewProjectStore returns an empty project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}

func (s *ProjectStore) Create(ctx context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Code == p.Code {
			return domerrors.ErrProjectCodeExists
		}
	}
	s.items = append(s.items, *p)
	return nil
}

// GetByID returns a copy of the project, or nil when absent.
func (s *ProjectStore) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *ProjectStore) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, 0, len(s.items))
	for _, p := range s.items {
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// SetActive toggles the activation flag under the write lock and returns the
// updated record, or ErrProjectNotFound when id does not resolve.
func (s *ProjectStore) SetActive(ctx context.Context, id string, active bool) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Active = active
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, domerrors.ErrProjectNotFound
}

var _ ports.ProjectRepository = (*ProjectStore)(nil)
