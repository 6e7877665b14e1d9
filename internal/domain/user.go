package domain

import "time"

// UserID is an opaque user identifier. It is issued at registration and
// treated as a plain string everywhere else; the mutation core never
// generates one.
type UserID string

// NewUserID validates that id is non-empty.
func NewUserID(id string) (UserID, error) {
	if id == "" {
		return "", NewValidationError("userId", "must not be empty")
	}
	return UserID(id), nil
}

// String returns the raw identifier.
func (id UserID) String() string { return string(id) }

// User is one user's full diary set plus publication metadata. A nil diary
// pointer means the slot has never been written. The struct is a
// request-scoped snapshot: orchestration loads it once, reads it from
// concurrent branches, and persists changes through the repository.
type User struct {
	ID       UserID
	Source   *Diary
	Variants [NumStyles]*Diary

	IsPublic   bool
	FavoriteID VariantID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiaryByID returns the diary in the given slot, or nil if the slot is
// empty. id must be a valid VariantID.
func (u *User) DiaryByID(id VariantID) *Diary {
	if id.IsSource() {
		return u.Source
	}
	return u.Variants[id.Int()-1]
}

// SetDiary places d into its slot, replacing any previous diary.
func (u *User) SetDiary(d Diary) {
	if d.ID.IsSource() {
		u.Source = &d
		return
	}
	u.Variants[d.ID.Int()-1] = &d
}
