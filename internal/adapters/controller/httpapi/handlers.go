package httpapi

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
	"ChallengeWizard/internal/domain/service/game"
	"ChallengeWizard/internal/domain/wizard"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type challengeItem struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Status    schema.ChallengeStatus `json:"status"`
	Category  string                 `json:"category,omitempty"`
	Theme     string                 `json:"theme,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

type listResponse struct {
	Items    []challengeItem `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

type catalogResponse struct {
	Steps           []wizard.Step              `json:"steps"`
	Categories      []wizard.Option            `json:"categories"`
	Themes          map[string][]wizard.Option `json:"themes"`
	Badges          []wizard.Option            `json:"badges"`
	NextBestActions []wizard.Option            `json:"nextBestActions"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{
		Steps:           wizard.Steps(),
		Categories:      wizard.Categories(),
		Themes:          map[string][]wizard.Option{},
		Badges:          wizard.Badges(),
		NextBestActions: wizard.NextBestActions(),
	}
	for _, c := range resp.Categories {
		resp.Themes[c.Value] = wizard.ThemesFor(c.Value)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListChallenges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := intParam(q.Get("page"), "page", 1)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	pageSize, err := intParam(q.Get("pageSize"), "pageSize", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.admin.List(r.Context(), q.Get("status"), page, pageSize)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(res.Items, res.Total, page, pageSize))
}

func (s *Server) handleGetChallenge(w http.ResponseWriter, r *http.Request) {
	c, err := s.admin.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteChallenge(w http.ResponseWriter, r *http.Request) {
	if err := s.admin.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	p, err := s.admin.Preview(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status schema.ChallengeStatus `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, errorz.NewFieldError("body", "%v", err))
		return
	}
	if !body.Status.Valid() {
		s.writeError(w, r, errorz.NewFieldError("status", "unknown status %q", body.Status))
		return
	}

	c, err := s.admin.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleWizardGet resumes from ?id=&step=&substep= when an id is given and
// otherwise returns the caller's open session.
func (s *Server) handleWizardGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id := strings.TrimSpace(q.Get("id"))
	if id == "" {
		v, err := s.forms.Current(r.Context(), userID(r))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
		return
	}

	var at *schema.Cursor
	if q.Has("step") {
		step, err := intParam(q.Get("step"), "step", 0)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		sub, err := intParam(q.Get("substep"), "substep", 0)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		at = &schema.Cursor{Step: step, SubStep: sub}
	}

	v, err := s.forms.Resume(r.Context(), userID(r), id, at)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleWizardStart(w http.ResponseWriter, r *http.Request) {
	v, err := s.forms.StartCreate(r.Context(), userID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) handleWizardCancel(w http.ResponseWriter, r *http.Request) {
	if err := s.forms.Cancel(r.Context(), userID(r)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWizardAnswer(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		s.writeError(w, r, errorz.NewFieldError("body", "%v", err))
		return
	}
	if !json.Valid(body) {
		s.writeError(w, r, errorz.NewFieldError("body", "must be valid JSON"))
		return
	}

	section := schema.Section(mux.Vars(r)["section"])
	v, err := s.forms.Answer(r.Context(), userID(r), section, json.RawMessage(body))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleWizardNext(w http.ResponseWriter, r *http.Request) {
	v, err := s.forms.Next(r.Context(), userID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleWizardBack(w http.ResponseWriter, r *http.Request) {
	v, err := s.forms.Back(r.Context(), userID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleWizardSubmit(w http.ResponseWriter, r *http.Request) {
	v, err := s.forms.Submit(r.Context(), userID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleShowcaseList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := intParam(q.Get("page"), "page", 1)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	pageSize, err := intParam(q.Get("pageSize"), "pageSize", 10)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.game.Listed(r.Context(), page, pageSize)
	if err != nil && !errors.Is(err, game.ErrNoListedChallenges) {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(res.Items, res.Total, page, pageSize))
}

func (s *Server) handleShowcaseGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.game.Challenge(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func toListResponse(items []schema.Challenge, total, page, pageSize int) listResponse {
	out := listResponse{Items: make([]challengeItem, 0, len(items)), Total: total, Page: page, PageSize: pageSize}
	for _, c := range items {
		out.Items = append(out.Items, challengeItem{
			ID:        c.ID,
			Title:     c.Title(),
			Status:    c.Status,
			Category:  c.FormData.Category(),
			Theme:     c.FormData.Theme(),
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return out
}

func intParam(raw, field string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errorz.NewFieldError(field, "must be an integer")
	}
	return v, nil
}
