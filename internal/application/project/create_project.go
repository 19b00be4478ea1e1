package project

import (
	"context"
	"strings"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
	domerrors "github.com/mubarek-tria/CIEt/internal/domain/errors"
)

// AddressInput is raw address input before normalization. Subcity is a
// legacy alias for Zone.
type AddressInput struct {
	City    string
	Zone    string
	Subcity string
	Woreda  string
}

// CreateProjectInput carries the caller-supplied project fields.
type CreateProjectInput struct {
	Name         string
	Code         string
	Program      string
	Address      AddressInput
	DirectorName string
}

// CreateProject creates a project with a derived site URL and a one-time
// credential pair. The plain secret is embedded in the record; this core
// does not redact it on subsequent reads.
type CreateProject struct {
	projects      ports.ProjectRepository
	ident         ports.IDGenerator
	portalBaseURL string
}

// NewCreateProject builds the use case. portalBaseURL must not end in a slash.
func NewCreateProject(projects ports.ProjectRepository, ident ports.IDGenerator, portalBaseURL string) *CreateProject {
	return &CreateProject{projects: projects, ident: ident, portalBaseURL: strings.TrimRight(portalBaseURL, "/")}
}

// Execute validates input, derives siteUrl and credentials from the code,
// and persists the project as active. The duplicate-code check is atomic
// with the insert inside the repository.
func (uc *CreateProject) Execute(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if input.Name == "" || input.Code == "" {
		return nil, domerrors.ErrNameCodeRequired
	}
	secret, err := uc.ident.NewSecret()
	if err != nil {
		return nil, err
	}
	p := &domain.Project{
		ID:           uc.ident.NewID(),
		Name:         input.Name,
		Code:         input.Code,
		Program:      domain.Optional(input.Program),
		Address:      domain.NewAddress(input.Address.City, input.Address.Zone, input.Address.Subcity, input.Address.Woreda),
		DirectorName: domain.Optional(input.DirectorName),
		Active:       true,
		SiteURL:      uc.portalBaseURL + "/" + input.Code,
		Credentials: domain.Credentials{
			Username: strings.ToLower(input.Code) + "_admin",
			Password: secret,
		},
	}
	if err := uc.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
