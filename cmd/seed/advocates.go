package main

import (
	"advocates/internal/domain"
	"advocates/internal/util"
)

var specialties = []string{
	"Bipolar",
	"LGBTQ",
	"Medication/Prescribing",
	"Suicide History/Attempts",
	"General Mental Health (anxiety, depression, stress, grief, life transitions)",
	"Men's issues",
	"Relationship Issues (family, friends, couple, etc)",
	"Trauma & PTSD",
	"Personality disorders",
	"Personal growth",
	"Substance use/abuse",
	"Pediatrics",
	"Women's issues (post-partum, infertility, family planning)",
	"Chronic pain",
	"Weight loss & nutrition",
	"Eating disorders",
	"Diabetic Diet and nutrition",
	"Coaching (leadership, career, academic and wellness)",
	"Life coaching",
	"Obsessive-compulsive disorders",
	"Neuropsychological evaluations & testing (ADHD testing)",
	"Attention and Hyperactivity (ADHD)",
	"Sleep issues",
	"Schizophrenia and psychotic disorders",
	"Learning disorders",
	"Domestic abuse",
}

type seedRow struct {
	first, last, city, degree string
	years                     int
	phone                     any
}

// phone values are deliberately mixed text and numbers, like the upstream feed
var seedRows = []seedRow{
	{"John", "Doe", "New York", "MD", 10, 5551234567},
	{"Jane", "Smith", "Los Angeles", "PhD", 8, "555-987-6543"},
	{"Alice", "Johnson", "Chicago", "MSW", 5, 5554567890},
	{"Michael", "Brown", "Houston", "MD", 12, "(555) 654-3210"},
	{"Emily", "Davis", "Phoenix", "PhD", 7, 5553210987},
	{"Chris", "Martinez", "Philadelphia", "MSW", 9, 5557890123},
	{"Jessica", "Taylor", "San Antonio", "MD", 11, "555.456.7890"},
	{"David", "Harris", "San Diego", "PhD", 6, 5550123456},
	{"Laura", "Clark", "Dallas", "MSW", 4, 5553456789},
	{"Daniel", "Lewis", "San Jose", "MD", 13, 5556789012},
	{"Sarah", "Lee", "Austin", "PhD", 10, "5554561234"},
	{"James", "King", "Jacksonville", "MSW", 5, 5557896543},
	{"Megan", "Green", "San Francisco", "MD", 14, 5556543210},
	{"Joshua", "Walker", "Columbus", "PhD", 9, 5553214567},
	{"Amanda", "Hall", "Fort Worth", "MSW", 3, 5559876543},
}

// seedAdvocates builds the demo set. Specialties are picked deterministically
// so repeated seeds produce identical rows.
func seedAdvocates() []domain.Advocate {
	out := make([]domain.Advocate, 0, len(seedRows))
	for i, r := range seedRows {
		out = append(out, domain.Advocate{
			ID:                util.SeedAdvocateID(i),
			FirstName:         r.first,
			LastName:          r.last,
			City:              r.city,
			Degree:            r.degree,
			Specialties:       pickSpecialties(i),
			YearsOfExperience: r.years,
			PhoneNumber:       domain.NewPhone(r.phone),
		})
	}
	return out
}

func pickSpecialties(i int) []string {
	n := 1 + i%3
	out := make([]string, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, specialties[(i*7+k*5)%len(specialties)])
	}
	return out
}
