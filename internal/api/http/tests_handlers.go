package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/exam-portal/exam-portal/internal/auth"
	"github.com/exam-portal/exam-portal/internal/exam"
	"github.com/exam-portal/exam-portal/internal/grading"
)

// GET /api/tests
func ListTestsHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListTests(r.Context())
		if err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /api/tests/{testID}
func GetTestHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := testID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Test not found")
			return
		}
		t, err := svc.GetTest(r.Context(), id)
		if err != nil {
			if errors.Is(err, exam.ErrTestNotFound) {
				writeError(w, http.StatusNotFound, "Test not found")
				return
			}
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

type submitReq struct {
	// Raw JSON values keyed by question id: the scoring engine accepts any
	// value and simply counts non-matches as incorrect.
	Answers map[string]any `json:"answers"`
}

type submitResp struct {
	Score      int               `json:"score"`
	Total      int               `json:"totalQuestions"`
	Percentage int               `json:"percentage"`
	Details    []grading.Outcome `json:"detailedResults"`
}

// POST /api/tests/{testID}/submit
func SubmitTestHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}
		id, ok := testID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Test not found")
			return
		}
		var req submitReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "answers object required")
			return
		}

		res, err := svc.Submit(r.Context(), claims.UserID, id, req.Answers)
		if err != nil {
			if errors.Is(err, exam.ErrTestNotFound) {
				writeError(w, http.StatusNotFound, "Test not found")
				return
			}
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, submitResp{
			Score:      res.Score,
			Total:      res.Total,
			Percentage: res.Percentage,
			Details:    res.Details,
		})
	}
}

func testID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "testID"))
	if err != nil {
		return 0, false
	}
	return id, true
}
