package view

import (
	"advocates/internal/domain"
	"advocates/internal/search"
)

// Session is the page state: the full records plus the search term.
// The displayed rows are always derived, never stored.
type Session struct {
	status     Status
	records    []domain.Advocate
	searchTerm string
}

func (s *Session) SetSearchTerm(term string) { s.searchTerm = term }

// Reset clears the search term, which brings the displayed rows back to the full list.
func (s *Session) Reset() { s.searchTerm = "" }

func (s *Session) SearchTerm() string { return s.searchTerm }

func (s *Session) Status() Status { return s.status }

// Displayed is empty until the directory is ready.
func (s *Session) Displayed() []domain.Advocate {
	if s.status != StatusReady {
		return []domain.Advocate{}
	}
	return search.Filter(s.records, s.searchTerm)
}

// SearchingFor is the "searching for" banner text.
func (s *Session) SearchingFor() string { return s.searchTerm }

// Records is the full list the session filters over.
func (s *Session) Records() []domain.Advocate { return s.records }
