package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jasongilchristp/xrm-by-json/internal/api/httpx"
	"github.com/jasongilchristp/xrm-by-json/internal/api/validate"
	"github.com/jasongilchristp/xrm-by-json/internal/auth"
	"github.com/jasongilchristp/xrm-by-json/internal/metrics"
	"github.com/jasongilchristp/xrm-by-json/internal/middleware"
	"github.com/jasongilchristp/xrm-by-json/internal/services"
	"github.com/jasongilchristp/xrm-by-json/internal/session"
)

type AuthHandler struct {
	Users    *services.UserService
	TM       *auth.TokenManager
	Sessions *session.Store
}

func NewAuthHandler(users *services.UserService, tm *auth.TokenManager, sessions *session.Store) *AuthHandler {
	return &AuthHandler{Users: users, TM: tm, Sessions: sessions}
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm,omitempty"`
}

type tokenResp struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login checks the credentials and issues a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if errs := validate.Collect(
		validate.Required("username", req.Username),
		validate.Required("password", req.Password),
	); errs != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "please enter both username and password", errs)
		return
	}

	ok, err := h.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid username or password", nil)
		return
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.issue(w, req.Username)
}

// Signup creates the account and logs the new user straight in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if err := h.Users.Create(req.Username, req.Password, req.Confirm); err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	h.issue(w, req.Username)
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	jti, ok := middleware.SessionID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "no active session", nil)
		return
	}
	if err := h.Sessions.Delete(jti); err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me returns the username bound to the presented session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.Username(r.Context())
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"username": username})
}

func (h *AuthHandler) issue(w http.ResponseWriter, username string) {
	token, jti, expires, err := h.TM.Issue(username)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "token generation failed", nil)
		return
	}
	if err := h.Sessions.Put(jti, username, expires); err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{Token: token, Username: username, ExpiresAt: expires})
}
