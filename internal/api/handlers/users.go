package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jasongilchristp/xrm-by-json/internal/api/httpx"
	"github.com/jasongilchristp/xrm-by-json/internal/services"
)

type UsersHandler struct {
	Svc *services.UserService
}

func NewUsersHandler(svc *services.UserService) *UsersHandler {
	return &UsersHandler{Svc: svc}
}

type userListResp struct {
	Total   int      `json:"total"`
	Letters []string `json:"letters"`
	Users   []string `json:"users"`
}

// List serves the users view. ?scope=deletable mirrors the delete form: the
// admin row disappears from the rows, the letter options and the total.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	deletableOnly := r.URL.Query().Get("scope") == "deletable"
	users, letters, total, err := h.Svc.List(queryOptions(r), deletableOnly)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	httpx.WriteJSON(w, http.StatusOK, userListResp{Total: total, Letters: letters, Users: names})
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if err := h.Svc.Create(req.Username, req.Password, req.Confirm); err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(chi.URLParam(r, "username")); err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
