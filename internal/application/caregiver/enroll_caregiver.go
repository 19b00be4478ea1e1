package caregiver

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/application/project"
	"github.com/mubarek-tria/CIEt/internal/domain"
	domerrors "github.com/mubarek-tria/CIEt/internal/domain/errors"
)

// ContactInput is raw contact input.
type ContactInput struct {
	Phone string
	Email string
}

// EnrollCaregiverInput carries the caller-supplied caregiver fields.
type EnrollCaregiverInput struct {
	FullName           string
	Gender             string
	DOB                string
	ChildName          string
	ChildProjectNumber string
	Address            project.AddressInput
	Contact            ContactInput
	PhotoURL           string
	ProjectID          string
}

// EnrollCaregiver registers a caregiver under an existing, active project.
type EnrollCaregiver struct {
	projects   ports.ProjectRepository
	caregivers ports.CaregiverRepository
	ident      ports.IDGenerator
}

// NewEnrollCaregiver builds the use case.
func NewEnrollCaregiver(projects ports.ProjectRepository, caregivers ports.CaregiverRepository, ident ports.IDGenerator) *EnrollCaregiver {
	return &EnrollCaregiver{projects: projects, caregivers: caregivers, ident: ident}
}

// Execute validates the project reference before the name field, matching the
// API contract: missing projectId → validation, unknown project → not found,
// inactive project → forbidden, then missing fullName → validation.
func (uc *EnrollCaregiver) Execute(ctx context.Context, input EnrollCaregiverInput) (*domain.Caregiver, error) {
	if input.ProjectID == "" {
		return nil, domerrors.ErrProjectIDRequired
	}
	proj, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if proj == nil {
		return nil, domerrors.ErrProjectNotFound
	}
	if !proj.Active {
		return nil, domerrors.ErrProjectInactive
	}
	if input.FullName == "" {
		return nil, domerrors.ErrFullNameRequired
	}
	code, err := uc.ident.NewCaregiverCode()
	if err != nil {
		return nil, err
	}
	c := &domain.Caregiver{
		ID:                 uc.ident.NewID(),
		UniqueID:           code,
		ProjectID:          input.ProjectID,
		FullName:           input.FullName,
		Gender:             domain.Optional(input.Gender),
		DOB:                domain.Optional(input.DOB),
		ChildName:          domain.Optional(input.ChildName),
		ChildProjectNumber: domain.Optional(input.ChildProjectNumber),
		Address:            domain.NewAddress(input.Address.City, input.Address.Zone, input.Address.Subcity, input.Address.Woreda),
		Contact:            domain.NewContact(input.Contact.Phone, input.Contact.Email),
		PhotoURL:           domain.Optional(input.PhotoURL),
	}
	if err := uc.caregivers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
