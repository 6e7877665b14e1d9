// Package user implements account lifecycle and diary retrieval.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mirrornote/backend/internal/domain"
	"github.com/mirrornote/backend/pkg/ctxutil"
)

// userRepo is the persistence surface the service depends on.
type userRepo interface {
	Create(ctx context.Context, id domain.UserID) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	UpdatePublication(ctx context.Context, id domain.UserID, isPublic bool, favorite domain.VariantID) error
	Delete(ctx context.Context, id domain.UserID) error
}

// tokenIssuer mints access tokens for freshly registered accounts.
type tokenIssuer interface {
	GenerateAccessToken(userID string) (string, error)
}

type Service struct {
	log    *slog.Logger
	repo   userRepo
	tokens tokenIssuer
}

func NewService(logger *slog.Logger, repo userRepo, tokens tokenIssuer) *Service {
	return &Service{
		log:    logger.With(slog.String("service", "user")),
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates an anonymous account and returns its identifier together
// with an access token for subsequent requests.
func (s *Service) Register(ctx context.Context) (string, string, error) {
	id := uuid.New().String()

	userID, err := domain.NewUserID(id)
	if err != nil {
		return "", "", fmt.Errorf("build user id: %w", err)
	}

	if err := s.repo.Create(ctx, userID); err != nil {
		return "", "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(id)
	if err != nil {
		return "", "", fmt.Errorf("issue access token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", id))
	return id, token, nil
}

// GetDiary returns a single diary from the caller's set. A slot the caller
// has never written reads as not found.
func (s *Service) GetDiary(ctx context.Context, id domain.VariantID) (domain.Diary, error) {
	userID, err := s.identity(ctx)
	if err != nil {
		return domain.Diary{}, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return domain.Diary{}, fmt.Errorf("load diary set: %w", err)
	}

	diary := user.DiaryByID(id)
	if diary == nil {
		return domain.Diary{}, fmt.Errorf("diary %d is empty: %w", id.Int(), domain.ErrNotFound)
	}
	return *diary, nil
}

// UpdatePublication sets the caller's sharing flag and favorite variant.
func (s *Service) UpdatePublication(ctx context.Context, isPublic bool, favorite domain.VariantID) error {
	userID, err := s.identity(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePublication(ctx, userID, isPublic, favorite); err != nil {
		return fmt.Errorf("update publication: %w", err)
	}
	return nil
}

// Delete removes the caller's account and every diary with it.
func (s *Service) Delete(ctx context.Context) error {
	userID, err := s.identity(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", userID.String()))
	return nil
}

func (s *Service) identity(ctx context.Context) (domain.UserID, error) {
	raw, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", fmt.Errorf("request carries no identity: %w", domain.ErrUnauthorized)
	}
	return domain.NewUserID(raw)
}
