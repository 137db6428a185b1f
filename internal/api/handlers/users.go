// Package handlers maps the HTTP surface onto service calls. Request
// bodies are form-encoded, responses are JSON.
package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitlog/exercise-tracker/internal/api/httpx"
	"github.com/fitlog/exercise-tracker/internal/api/validate"
	"github.com/fitlog/exercise-tracker/internal/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

type userResponse struct {
	Username string             `json:"username"`
	ID       primitive.ObjectID `json:"_id"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "unable to parse form body", nil)
		return
	}

	username := r.PostFormValue("username")
	if ef := validate.Required("username", username); ef != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "invalid request", validate.Errs{*ef})
		return
	}

	u, err := h.svc.Create(r.Context(), username)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, userResponse{Username: u.Username, ID: u.ID})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{Username: u.Username, ID: u.ID})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
