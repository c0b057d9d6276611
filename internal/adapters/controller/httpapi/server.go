// Package httpapi serves the dashboard and the challenge wizard as a JSON API.
package httpapi

import (
	"ChallengeWizard/internal/adapters/httpmw"
	"ChallengeWizard/internal/domain/service/access"
	"ChallengeWizard/internal/domain/service/admin"
	"ChallengeWizard/internal/domain/service/form"
	"ChallengeWizard/internal/domain/service/game"
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// AdminHeader carries the caller's admin id.
const AdminHeader = "X-Admin-Id"

type ctxKey string

const userIDKey ctxKey = "challengewizard.user_id"

type Server struct {
	access *access.Service
	forms  *form.Service
	admin  *admin.Service
	game   *game.Service
	log    *zap.Logger
}

func New(accessSvc *access.Service, forms *form.Service, adminSvc *admin.Service, gameSvc *game.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		access: accessSvc,
		forms:  forms,
		admin:  adminSvc,
		game:   gameSvc,
		log:    log,
	}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)
	api.HandleFunc("/showcase", s.handleShowcaseList).Methods(http.MethodGet)
	api.HandleFunc("/showcase/{id}", s.handleShowcaseGet).Methods(http.MethodGet)

	adm := api.NewRoute().Subrouter()
	adm.Use(s.requireAdmin)
	adm.HandleFunc("/challenges", s.handleListChallenges).Methods(http.MethodGet)
	adm.HandleFunc("/challenges/{id}", s.handleGetChallenge).Methods(http.MethodGet)
	adm.HandleFunc("/challenges/{id}", s.handleDeleteChallenge).Methods(http.MethodDelete)
	adm.HandleFunc("/challenges/{id}/preview", s.handlePreview).Methods(http.MethodGet)
	adm.HandleFunc("/challenges/{id}/status", s.handleUpdateStatus).Methods(http.MethodPost)

	adm.HandleFunc("/wizard", s.handleWizardGet).Methods(http.MethodGet)
	adm.HandleFunc("/wizard", s.handleWizardStart).Methods(http.MethodPost)
	adm.HandleFunc("/wizard", s.handleWizardCancel).Methods(http.MethodDelete)
	adm.HandleFunc("/wizard/answers/{section}", s.handleWizardAnswer).Methods(http.MethodPatch, http.MethodPost)
	adm.HandleFunc("/wizard/next", s.handleWizardNext).Methods(http.MethodPost)
	adm.HandleFunc("/wizard/back", s.handleWizardBack).Methods(http.MethodPost)
	adm.HandleFunc("/wizard/submit", s.handleWizardSubmit).Methods(http.MethodPost)

	return httpmw.Chain(r,
		httpmw.WithRequestID,
		httpmw.WithRecover(s.log),
		httpmw.WithAccessLog(s.log),
	)
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := s.access.Authorize(r.Header.Get(AdminHeader))
		if err != nil {
			writeErr(w, http.StatusForbidden, "admin access required")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userID(r *http.Request) int64 {
	v, _ := r.Context().Value(userIDKey).(int64)
	return v
}
