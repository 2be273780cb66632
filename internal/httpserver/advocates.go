package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"advocates/internal/domain"
)

type AdvocateLister interface {
	List(ctx context.Context) ([]domain.Advocate, error)
}

type Advocates struct {
	Svc AdvocateLister
}

func (a *Advocates) Register(r *mux.Router) {
	r.HandleFunc("/api/advocates", a.handleList).Methods(http.MethodGet)
}

func (a *Advocates) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.Svc.List(r.Context())
	if err != nil {
		slog.Error("list advocates failed", "err", err)
		http.Error(w, ErrDependency, http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(domain.ListResponse{Data: rows})
}
