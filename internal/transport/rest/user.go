package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mirrornote/backend/internal/domain"
)

// userService manages account lifecycle.
type userService interface {
	Register(ctx context.Context) (string, string, error)
	Delete(ctx context.Context) error
}

// UserHandler serves account REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type registerResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// Register handles POST /api/v1/register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, token, err := h.svc.Register(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{UserID: id, Token: token})
}

// Delete handles DELETE /api/v1/user.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *UserHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
