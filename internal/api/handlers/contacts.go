package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jasongilchristp/xrm-by-json/internal/api/httpx"
	"github.com/jasongilchristp/xrm-by-json/internal/models"
	"github.com/jasongilchristp/xrm-by-json/internal/query"
	"github.com/jasongilchristp/xrm-by-json/internal/services"
)

type ContactsHandler struct {
	Svc *services.ContactService
}

func NewContactsHandler(svc *services.ContactService) *ContactsHandler {
	return &ContactsHandler{Svc: svc}
}

type contactView struct {
	models.Contact
	FullName string `json:"full_name"`
}

type contactListResp struct {
	Total    int           `json:"total"`
	Letters  []string      `json:"letters"`
	Contacts []contactView `json:"contacts"`
}

// List serves the contacts view: ?search= and ?letter= feed the query
// pipeline, letters are the available filter options, total is the
// unfiltered table size.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, letters, total, err := h.Svc.List(queryOptions(r))
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	views := make([]contactView, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, contactView{Contact: c, FullName: c.FullName()})
	}
	httpx.WriteJSON(w, http.StatusOK, contactListResp{Total: total, Letters: letters, Contacts: views})
}

func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	created, err := h.Svc.Add(c)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, contactView{Contact: created, FullName: created.FullName()})
}

func (h *ContactsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var c models.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	updated, err := h.Svc.Update(chi.URLParam(r, "id"), c)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, contactView{Contact: updated, FullName: updated.FullName()})
}

func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(chi.URLParam(r, "id")); err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// queryOptions reads the shared list-filter params. A missing letter means
// no letter filter, same as the explicit "All" sentinel.
func queryOptions(r *http.Request) query.Options {
	return query.Options{
		Search: r.URL.Query().Get("search"),
		Letter: r.URL.Query().Get("letter"),
	}
}
