package http

import (
	"net/http"

	"github.com/exam-portal/exam-portal/internal/auth"
	"github.com/exam-portal/exam-portal/internal/exam"
)

// GET /api/results — only the caller's own history, in insertion order.
func ListResultsHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}
		list, err := svc.ResultsFor(r.Context(), claims.UserID)
		if err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}
