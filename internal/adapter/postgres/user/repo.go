// Package user implements the user diary-set repository using PostgreSQL.
package user

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/mirrornote/backend/internal/adapter/postgres"
	"github.com/mirrornote/backend/internal/domain"
)

const table = "users"

// diaryColumns maps a VariantID to its column. The mapping is static and
// must stay stable across schema evolution: index 0 is the human source
// diary, 1..NumStyles the AI variants.
var diaryColumns = [domain.NumStyles + 1]string{
	"human_diary",
	"ai_diary_1",
	"ai_diary_2",
	"ai_diary_3",
	"ai_diary_4",
}

func columnFor(id domain.VariantID) string { return diaryColumns[id.Int()] }

// sourceVariantID is the id of the human source diary slot.
var sourceVariantID domain.VariantID

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user diary-set persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type userRow struct {
	UserID     string    `db:"user_id"`
	HumanDiary *string   `db:"human_diary"`
	AIDiary1   *string   `db:"ai_diary_1"`
	AIDiary2   *string   `db:"ai_diary_2"`
	AIDiary3   *string   `db:"ai_diary_3"`
	AIDiary4   *string   `db:"ai_diary_4"`
	IsPublic   bool      `db:"is_public"`
	FavoriteID int       `db:"favorite_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Create inserts a fresh user row with all diary slots empty.
func (r *Repo) Create(ctx context.Context, id domain.UserID) error {
	query, args, err := builder.
		Insert(table).
		Columns("user_id").
		Values(id.String()).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	return nil
}

// GetByID loads a user's full diary set. Returns domain.ErrNotFound if the
// user does not exist.
func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	query, args, err := builder.
		Select(
			"user_id",
			"human_diary", "ai_diary_1", "ai_diary_2", "ai_diary_3", "ai_diary_4",
			"is_public", "favorite_id",
			"created_at", "updated_at",
		).
		From(table).
		Where(sq.Eq{"user_id": id.String()}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	var row userRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	return toDomainUser(row)
}

// SaveVariantDiary persists one variant diary into its static column.
// The write is idempotent per variant: repeating it with the same content
// is a no-op at the data level.
func (r *Repo) SaveVariantDiary(ctx context.Context, id domain.UserID, d domain.Diary) error {
	return r.saveDiaryColumn(ctx, id, columnFor(d.ID), d.Content.Value())
}

// SaveSourceDiary persists the human-written source diary.
func (r *Repo) SaveSourceDiary(ctx context.Context, id domain.UserID, content domain.DiaryContent) error {
	return r.saveDiaryColumn(ctx, id, columnFor(sourceVariantID), content.Value())
}

func (r *Repo) saveDiaryColumn(ctx context.Context, id domain.UserID, column, value string) error {
	query, args, err := builder.
		Update(table).
		Set(column, value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": id.String()}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(errNoRowsUpdated, "user", id.String())
	}
	return nil
}

// UpdatePublication sets the public flag and the favorite variant id.
func (r *Repo) UpdatePublication(ctx context.Context, id domain.UserID, isPublic bool, favorite domain.VariantID) error {
	query, args, err := builder.
		Update(table).
		Set("is_public", isPublic).
		Set("favorite_id", favorite.Int()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": id.String()}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(errNoRowsUpdated, "user", id.String())
	}
	return nil
}

// Delete removes the user row.
func (r *Repo) Delete(ctx context.Context, id domain.UserID) error {
	query, args, err := builder.
		Delete(table).
		Where(sq.Eq{"user_id": id.String()}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(errNoRowsUpdated, "user", id.String())
	}
	return nil
}
