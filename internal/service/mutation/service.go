// Package mutation implements the incremental multi-variant mutation
// engine: given a user's new source text it re-transforms only the appended
// suffix for every AI style variant, splices each variant's preserved prefix
// with the freshly transformed tail, and persists the whole diary set.
package mutation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/mirrornote/backend/internal/domain"
)

// transformer defines the remote text-transformation call used by the worker.
type transformer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// diaryRepo defines the diary store gateway needed by the mutation service.
type diaryRepo interface {
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	SaveVariantDiary(ctx context.Context, id domain.UserID, d domain.Diary) error
	SaveSourceDiary(ctx context.Context, id domain.UserID, content domain.DiaryContent) error
}

// Service orchestrates diary mutation for all style variants of one user.
type Service struct {
	log  *slog.Logger
	repo diaryRepo
	llm  transformer
}

// NewService creates a new mutation service instance.
func NewService(logger *slog.Logger, repo diaryRepo, llm transformer) *Service {
	return &Service{
		log:  logger.With("service", "mutation"),
		repo: repo,
		llm:  llm,
	}
}

// Mutate applies newSource as the user's source diary and reconciles every
// AI variant against it concurrently. Variant branches are independent; the
// source diary is persisted only after all of them have joined, so a failed
// request never leaves the source ahead of its variants. Returns the new
// source length in characters.
//
// Branch failures (persistence errors, panics) abort the whole request.
// Transformation soft failures do not: they surface as sentinel text inside
// the affected variant.
func (s *Service) Mutate(ctx context.Context, userID domain.UserID, newSource domain.DiaryContent) (int, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load diary set: %w", err)
	}

	previousSource := ""
	if user.Source != nil {
		previousSource = user.Source.Content.Value()
	}
	prevSourceLen := utf8.RuneCountInString(previousSource)
	stable := StableIndex(newSource.Value(), previousSource)
	if stable == 0 && previousSource != "" && strings.HasPrefix(previousSource, newSource.Value()) {
		// Pure truncation: every remaining character was already mutated,
		// so the variants only need length-aligning.
		stable = newSource.Len()
	}

	s.log.InfoContext(ctx, "mutation started",
		slog.String("user_id", userID.String()),
		slog.Int("stable_index", stable),
		slog.Int("source_chars", newSource.Len()),
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range domain.StyleVariantIDs() {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("variant %d: panic: %v: %w", id.Int(), r, domain.ErrUnexpected)
				}
			}()

			content, err := s.reconcile(gctx, id, user.DiaryByID(id), newSource, prevSourceLen, stable)
			if err != nil {
				return fmt.Errorf("variant %d: reconcile: %w", id.Int(), err)
			}

			if err := s.repo.SaveVariantDiary(gctx, userID, domain.NewDiary(id, content)); err != nil {
				return fmt.Errorf("variant %d: save: %w", id.Int(), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := s.repo.SaveSourceDiary(ctx, userID, newSource); err != nil {
		return 0, fmt.Errorf("save source diary: %w", err)
	}

	s.log.InfoContext(ctx, "mutation finished",
		slog.String("user_id", userID.String()),
		slog.Int("mutated_length", newSource.Len()),
	)

	return newSource.Len(), nil
}
