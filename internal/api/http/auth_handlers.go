package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/exam-portal/exam-portal/internal/auth"
	"github.com/exam-portal/exam-portal/internal/identity"
)

type credentialsReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResp struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    identity.User `json:"user"`
}

// POST /api/signup
func SignupHandler(users identity.Store, authSvc *auth.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "All fields are required")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			serverError(w, err)
			return
		}
		u, err := users.Create(r.Context(), req.Name, req.Email, hash)
		if err != nil {
			if errors.Is(err, identity.ErrEmailTaken) {
				writeError(w, http.StatusBadRequest, "User already exists")
				return
			}
			serverError(w, err)
			return
		}

		token, err := authSvc.IssueJWT(u.ID, u.Email)
		if err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, authResp{
			Message: "User created successfully",
			Token:   token,
			User:    u,
		})
	}
}

// POST /api/login
func LoginHandler(users identity.Store, authSvc *auth.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		// Uniform failure message: lookup miss and hash mismatch must be
		// indistinguishable to the caller.
		u, err := users.GetByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, identity.ErrNotFound) {
				writeError(w, http.StatusBadRequest, "Invalid credentials")
				return
			}
			serverError(w, err)
			return
		}
		if !auth.CheckPassword(u.PasswordHash, req.Password) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}

		token, err := authSvc.IssueJWT(u.ID, u.Email)
		if err != nil {
			serverError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, authResp{
			Message: "Login successful",
			Token:   token,
			User:    u,
		})
	}
}

func serverError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "Server error")
}
