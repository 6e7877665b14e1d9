package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mirrornote/backend/internal/domain"
	"github.com/mirrornote/backend/pkg/ctxutil"
)

// mutationService runs the mutation pipeline over the caller's diary set.
type mutationService interface {
	Mutate(ctx context.Context, userID domain.UserID, newSource domain.DiaryContent) (int, error)
}

// diaryService serves diary reads and publication settings.
type diaryService interface {
	GetDiary(ctx context.Context, id domain.VariantID) (domain.Diary, error)
	UpdatePublication(ctx context.Context, isPublic bool, favorite domain.VariantID) error
}

// DiaryHandler serves diary REST endpoints.
type DiaryHandler struct {
	mutations mutationService
	diaries   diaryService
	log       *slog.Logger
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(mutations mutationService, diaries diaryService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{
		mutations: mutations,
		diaries:   diaries,
		log:       logger.With("handler", "diary"),
	}
}

type mutateRequest struct {
	SourceText string `json:"sourceText"`
}

type mutateResponse struct {
	MutatedLength int `json:"mutatedLength"`
}

type diaryResponse struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

type publicationRequest struct {
	IsPublic   bool `json:"isPublic"`
	FavoriteID int  `json:"favoriteId"`
}

// Mutate handles POST /api/v1/diary/mutate.
func (h *DiaryHandler) Mutate(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := domain.NewDiaryContent(req.SourceText)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	length, err := h.mutations.Mutate(r.Context(), userID, content)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mutateResponse{MutatedLength: length})
}

// Get handles GET /api/v1/diary/{id}.
func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "diary id must be an integer")
		return
	}

	id, err := domain.NewVariantID(n)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	diary, err := h.diaries.GetDiary(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, diaryResponse{
		ID:      diary.ID.Int(),
		Content: diary.Content.Value(),
	})
}

// UpdatePublication handles POST /api/v1/diary/publication.
func (h *DiaryHandler) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	var req publicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	favorite, err := domain.NewVariantID(req.FavoriteID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.diaries.UpdatePublication(r.Context(), req.IsPublic, favorite); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *DiaryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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

func identity(r *http.Request) (domain.UserID, bool) {
	raw, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return "", false
	}
	return domain.UserID(raw), true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
