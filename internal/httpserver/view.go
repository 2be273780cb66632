package httpserver

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"advocates/internal/observability"
	"advocates/internal/view"
)

// View serves the listing page. The search term travels in the q parameter,
// so every request rebuilds its session from the loaded directory.
type View struct {
	Dir *view.Directory
}

func (v *View) Register(r *mux.Router) {
	r.HandleFunc("/", v.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/reset", v.handleReset).Methods(http.MethodPost)
}

func (v *View) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := v.Dir.Session()
	sess.SetSearchTerm(r.URL.Query().Get("q"))
	page := sess.Page()

	switch {
	case page.NoMatches:
		observability.Searches.WithLabelValues("empty").Inc()
	case sess.Status() == view.StatusReady && page.SearchTerm != "":
		observability.Searches.WithLabelValues("match").Inc()
	}

	var buf bytes.Buffer
	if err := view.Render(&buf, page); err != nil {
		slog.Error("render page failed", "err", err, "status", sess.Status().String())
		http.Error(w, ErrRender, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (v *View) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrBadForm, http.StatusBadRequest)
		return
	}
	sess := v.Dir.Session()
	sess.SetSearchTerm(r.PostForm.Get("q"))
	sess.Reset()
	http.Redirect(w, r, indexURL(sess.SearchTerm()), http.StatusSeeOther)
}

func indexURL(term string) string {
	if term == "" {
		return "/"
	}
	return "/?" + url.Values{"q": {term}}.Encode()
}
