package domain

import "errors"

// Advocate is one row of the directory. Field names match the /api/advocates payload.
type Advocate struct {
	ID                string   `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	City              string   `json:"city"`
	Degree            string   `json:"degree"`
	Specialties       []string `json:"specialties"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	PhoneNumber       Phone    `json:"phoneNumber"`
}

func (a Advocate) FullName() string {
	return a.FirstName + " " + a.LastName
}

func (a Advocate) Validate() error {
	if a.FirstName == "" || a.LastName == "" {
		return ErrMissingFields
	}
	if a.YearsOfExperience < 0 {
		return ErrInvalidYears
	}
	return nil
}

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidYears  = errors.New("years of experience must be non-negative")
)

// ListResponse is the envelope served by GET /api/advocates.
type ListResponse struct {
	Data []Advocate `json:"data"`
}
