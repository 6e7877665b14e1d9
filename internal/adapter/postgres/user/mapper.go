package user

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mirrornote/backend/internal/domain"
)

// errNoRowsUpdated marks an UPDATE/DELETE that matched no row; MapError
// turns it into domain.ErrNotFound.
var errNoRowsUpdated = pgx.ErrNoRows

// toDomainUser converts a raw row into the domain user. NULL and empty
// diary columns both map to an empty slot.
func toDomainUser(row userRow) (*domain.User, error) {
	id, err := domain.NewUserID(row.UserID)
	if err != nil {
		return nil, fmt.Errorf("user row %q: %w", row.UserID, err)
	}

	favorite, err := domain.NewVariantID(row.FavoriteID)
	if err != nil {
		return nil, fmt.Errorf("user row %q: favorite_id %d: %w", row.UserID, row.FavoriteID, err)
	}

	u := &domain.User{
		ID:         id,
		IsPublic:   row.IsPublic,
		FavoriteID: favorite,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	columns := []*string{row.HumanDiary, row.AIDiary1, row.AIDiary2, row.AIDiary3, row.AIDiary4}
	for i, value := range columns {
		if value == nil || *value == "" {
			continue
		}
		vid, err := domain.NewVariantID(i)
		if err != nil {
			return nil, fmt.Errorf("user row %q: diary slot %d: %w", row.UserID, i, err)
		}
		content, err := domain.NewDiaryContent(*value)
		if err != nil {
			return nil, fmt.Errorf("user row %q: diary slot %d: %w", row.UserID, i, err)
		}
		u.SetDiary(domain.NewDiary(vid, content))
	}

	return u, nil
}
