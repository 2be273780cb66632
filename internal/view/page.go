package view

import (
	_ "embed"
	"html/template"
	"io"
	"strconv"
)

type Row struct {
	Key         string
	Name        string
	City        string
	Degree      string
	Specialties []string
	Years       string
	Phone       string
}

type Page struct {
	Title        string
	SearchTerm   string
	SearchingFor string
	Loading      bool
	LoadFailed   bool
	NoMatches    bool
	Rows         []Row
}

// Page builds the render model from the session's derived rows.
func (s *Session) Page() Page {
	displayed := s.Displayed()
	p := Page{
		Title:        "Solace Advocates",
		SearchTerm:   s.searchTerm,
		SearchingFor: s.SearchingFor(),
		Loading:      s.status == StatusLoading,
		LoadFailed:   s.status == StatusFailed,
		NoMatches:    s.status == StatusReady && len(displayed) == 0,
		Rows:         make([]Row, 0, len(displayed)),
	}
	for _, a := range displayed {
		p.Rows = append(p.Rows, Row{
			Key:         a.ID,
			Name:        a.FullName(),
			City:        a.City,
			Degree:      a.Degree,
			Specialties: a.Specialties,
			Years:       strconv.Itoa(a.YearsOfExperience),
			Phone:       a.PhoneNumber.Display(),
		})
	}
	return p
}

//go:embed page.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

func Render(w io.Writer, p Page) error {
	return pageTemplate.Execute(w, p)
}
