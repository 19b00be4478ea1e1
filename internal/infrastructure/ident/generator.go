package ident

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
)

const caregiverCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator issues entity IDs and human-facing codes. Entity IDs are UUIDs;
// caregiver codes and credential secrets are nanoids.
type Generator struct{}

// NewGenerator returns the default generator.
func NewGenerator() *Generator { return &Generator{} }

// NewID returns a random UUID string.
func (g *Generator) NewID() string { return uuid.NewString() }

// NewCaregiverCode returns "CG-" followed by six uppercase alphanumerics.
// Uniqueness is not checked against existing records.
func (g *Generator) NewCaregiverCode() (string, error) {
	suffix, err := gonanoid.Generate(caregiverCodeAlphabet, 6)
	if err != nil {
		return "", err
	}
	return "CG-" + suffix, nil
}

// NewSecret returns a 10-character nanoid.
func (g *Generator) NewSecret() (string, error) {
	return gonanoid.New(10)
}

var _ ports.IDGenerator = (*Generator)(nil)
