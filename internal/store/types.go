package store

import (
	"time"

	"advocates/internal/domain"
)

type AdvocateUpsert struct {
	ID                string
	FirstName         string
	LastName          string
	City              string
	Degree            string
	Specialties       []string
	YearsOfExperience int
	PhoneDigits       string
	Now               time.Time
}

func NewAdvocateUpsert(a domain.Advocate, now time.Time) AdvocateUpsert {
	return AdvocateUpsert{
		ID:                a.ID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		City:              a.City,
		Degree:            a.Degree,
		Specialties:       a.Specialties,
		YearsOfExperience: a.YearsOfExperience,
		PhoneDigits:       a.PhoneNumber.Digits,
		Now:               now,
	}
}
