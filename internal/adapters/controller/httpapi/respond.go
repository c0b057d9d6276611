package httpapi

import (
	"ChallengeWizard/internal/domain/errorz"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type recoveryAction struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

var returnToDashboard = recoveryAction{Label: "Return to Dashboard", Href: "/"}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// writeError maps domain errors onto status codes. Anything unknown is logged
// and reported as a 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr *errorz.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":   errorz.ErrValidation.Error(),
			"field":   fieldErr.Field,
			"message": fieldErr.Message,
		})
	case errors.Is(err, errorz.ErrValidation):
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errorz.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":  "not found",
			"action": returnToDashboard,
		})
	case errors.Is(err, errorz.ErrWizardClosed):
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":  err.Error(),
			"action": returnToDashboard,
		})
	case errors.Is(err, errorz.ErrForbidden):
		writeErr(w, http.StatusForbidden, err.Error())
	case errors.Is(err, errorz.ErrInvalidTransition):
		writeErr(w, http.StatusConflict, err.Error())
	default:
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeErr(w, http.StatusInternalServerError, "internal server error")
	}
}
