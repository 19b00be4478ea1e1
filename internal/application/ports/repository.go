package ports

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/domain"
)

// ProjectFilter narrows ListProjects. A nil Active returns every project.
type ProjectFilter struct {
	Active *bool
}

// FundFilter narrows fund listings; empty fields match everything.
type FundFilter struct {
	ProjectID   string
	CaregiverID string
}

// ActivityFilter narrows activity listings; empty fields match everything.
type ActivityFilter struct {
	ProjectID   string
	CaregiverID string
}

// ProjectRepository defines persistence for projects. Create must reject a
// duplicate code with errors.ErrProjectCodeExists atomically with the insert.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Project, error)
}

// CaregiverRepository defines persistence for caregivers.
type CaregiverRepository interface {
	Create(ctx context.Context, c *domain.Caregiver) error
	GetByID(ctx context.Context, id string) (*domain.Caregiver, error)
	List(ctx context.Context, projectID string) ([]domain.Caregiver, error)
	Count(ctx context.Context) (int, error)
}

// FundRepository defines persistence for fund allocations.
type FundRepository interface {
	Create(ctx context.Context, f *domain.Fund) error
	List(ctx context.Context, filter FundFilter) ([]domain.Fund, error)
}

// ActivityRepository defines persistence for reported activities.
type ActivityRepository interface {
	Create(ctx context.Context, a *domain.Activity) error
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
}
