package project

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
)

// SetProjectStatusInput identifies the project and the desired state.
type SetProjectStatusInput struct {
	ID     string
	Active bool
}

// SetProjectStatus toggles a project's activation flag. This is the only
// mutation path a project has after creation.
type SetProjectStatus struct {
	projects ports.ProjectRepository
}

// NewSetProjectStatus builds the use case.
func NewSetProjectStatus(projects ports.ProjectRepository) *SetProjectStatus {
	return &SetProjectStatus{projects: projects}
}

// Execute persists the flag and returns the updated project. Returns
// errors.ErrProjectNotFound when the id does not resolve.
func (uc *SetProjectStatus) Execute(ctx context.Context, input SetProjectStatusInput) (*domain.Project, error) {
	return uc.projects.SetActive(ctx, input.ID, input.Active)
}
