package project

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
)

// ListProjectsInput carries the raw query filter. ActiveFilter narrows the
// result only when it is exactly "true" or "false"; any other value returns
// the unfiltered set.
type ListProjectsInput struct {
	ActiveFilter string
}

// ListProjects returns projects, optionally narrowed by activation state.
type ListProjects struct {
	projects ports.ProjectRepository
}

// NewListProjects builds the use case.
func NewListProjects(projects ports.ProjectRepository) *ListProjects {
	return &ListProjects{projects: projects}
}

// Execute lists projects per the filter contract above.
func (uc *ListProjects) Execute(ctx context.Context, input ListProjectsInput) ([]domain.Project, error) {
	var filter ports.ProjectFilter
	switch input.ActiveFilter {
	case "true":
		v := true
		filter.Active = &v
	case "false":
		v := false
		filter.Active = &v
	}
	return uc.projects.List(ctx, filter)
}
