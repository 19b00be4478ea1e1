package ports

// IDGenerator produces opaque entity identifiers and human-facing codes.
type IDGenerator interface {
	// NewID returns a collision-resistant opaque identifier.
	NewID() string
	// NewCaregiverCode returns a code of the form CG-XXXXXX (six uppercase
	// alphanumerics). Best-effort unique: no collision check is performed.
	NewCaregiverCode() (string, error)
	// NewSecret returns a short unpredictable credential secret.
	NewSecret() (string, error)
}
