package mutation

import (
	"context"

	"github.com/mirrornote/backend/internal/domain"
)

// reconcile computes one variant's next content from its previous mutation,
// the new source, and the stable index:
//
//  1. previous variant text below the stable index is preserved verbatim —
//     it is never regenerated;
//  2. only the source text past the stable index is transformed;
//  3. when the stable index reaches the end of the new source there is
//     nothing to transform: the previous mutation is kept as-is for an
//     unchanged source, or length-aligned when the source shrank;
//  4. a never-written slot has nothing to preserve: the whole source is
//     treated as new for that variant.
func (s *Service) reconcile(ctx context.Context, id domain.VariantID, previous *domain.Diary, newSource domain.DiaryContent, prevSourceLen, stableIndex int) (domain.DiaryContent, error) {
	if previous == nil {
		stableIndex = 0
	}

	if stableIndex >= newSource.Len() {
		if prevSourceLen <= newSource.Len() {
			return previous.Content, nil
		}
		return domain.NewDiaryContent(previous.Content.First(newSource.Len()))
	}

	prefix := ""
	if previous != nil {
		prefix = previous.Content.First(stableIndex)
	}

	transformed := s.transformSuffix(ctx, id, newSource.After(stableIndex))

	return domain.NewDiaryContent(prefix + transformed)
}
