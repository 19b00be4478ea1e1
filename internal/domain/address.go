package domain

// Address is the structured location shared by Project and Caregiver.
// All fields are optional and render as null when absent.
type Address struct {
	City   *string `json:"city"`
	Zone   *string `json:"zone"`
	Woreda *string `json:"woreda"`
}

// NewAddress normalizes raw address input. subcity is a legacy alias for
// zone and is used only when zone itself is empty.
func NewAddress(city, zone, subcity, woreda string) Address {
	if zone == "" {
		zone = subcity
	}
	return Address{
		City:   Optional(city),
		Zone:   Optional(zone),
		Woreda: Optional(woreda),
	}
}

// Contact holds caregiver contact details.
type Contact struct {
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// NewContact builds a Contact, mapping empty strings to null.
func NewContact(phone, email string) Contact {
	return Contact{Phone: Optional(phone), Email: Optional(email)}
}

// Optional maps the empty string to nil so optional fields marshal as null.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
