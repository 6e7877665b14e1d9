package mutation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mirrornote/backend/internal/domain"
)

// Soft-failure sentinels. They become the variant's visible text for the
// failed unit of work instead of aborting the request.
const (
	failedReplyText    = "Failed to mutate text."
	transportErrorText = "Error communicating with API."
)

// transformSuffix runs one remote transformation for a style variant.
// Whitespace-only text passes through without a remote call. Remote failures
// are soft: they yield sentinel text, never an error.
func (s *Service) transformSuffix(ctx context.Context, id domain.VariantID, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	reply, err := s.llm.Complete(ctx, buildPrompt(id, text))
	if err != nil {
		s.log.WarnContext(ctx, "transformation call failed",
			slog.Int("variant_id", id.Int()),
			slog.String("error", err.Error()),
		)
		return transportErrorText
	}
	if reply == "" {
		s.log.WarnContext(ctx, "transformation reply has no content",
			slog.Int("variant_id", id.Int()),
		)
		return failedReplyText
	}

	// A reply that is all echoed preamble sanitizes to nothing; treat it
	// like a missing reply so the variant still gets usable text.
	sanitized := Sanitize(reply)
	if sanitized == "" {
		s.log.WarnContext(ctx, "transformation reply sanitized to empty",
			slog.Int("variant_id", id.Int()),
		)
		return failedReplyText
	}

	return sanitized
}
