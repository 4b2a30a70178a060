package entity

// DoctorFilter is a domain-level filter for the patient-facing doctor search.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	City           string // Filter by city name (ILIKE)
	Specialization string // Filter by specialization (ILIKE)
	Name           string // Filter by doctor name (ILIKE)
	VerifiedOnly   bool
}
