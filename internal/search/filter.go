// Package search narrows an advocate list by a free-text term.
//
// Matching is plain case-insensitive substring containment against the full
// name, city, degree, each specialty and the decimal years of experience.
// The term is not trimmed and not interpreted as a number, so "5" also hits
// 15, 25 and 50 years.
package search

import (
	"strconv"
	"strings"

	"advocates/internal/domain"
)

// Filter returns the advocates matching term, in their original order.
// The input slice is never modified.
func Filter(records []domain.Advocate, term string) []domain.Advocate {
	needle := strings.ToLower(term)
	out := make([]domain.Advocate, 0, len(records))
	for _, a := range records {
		if matches(a, needle) {
			out = append(out, a)
		}
	}
	return out
}

// Matches reports whether a single advocate matches term.
func Matches(a domain.Advocate, term string) bool {
	return matches(a, strings.ToLower(term))
}

func matches(a domain.Advocate, needle string) bool {
	if contains(a.FullName(), needle) || contains(a.City, needle) || contains(a.Degree, needle) {
		return true
	}
	for _, s := range a.Specialties {
		if contains(s, needle) {
			return true
		}
	}
	return strings.Contains(strconv.Itoa(a.YearsOfExperience), needle)
}

func contains(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}
