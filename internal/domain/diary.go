// Package domain holds the core value types of the mirror-diary system:
// users, diaries and their variants, and the sentinel errors shared by
// every layer.
package domain

import (
	"strings"
)

// NumStyles is the number of AI style variants kept per user.
// Variant ids run 0..NumStyles, where 0 is the human-written source diary
// and 1..NumStyles are the style variants.
const NumStyles = 4

// VariantID identifies one diary slot of a user: 0 is the source diary,
// 1..NumStyles are the AI style variants.
type VariantID int

// NewVariantID validates id against the fixed slot range.
func NewVariantID(id int) (VariantID, error) {
	if id < 0 || id > NumStyles {
		return 0, NewValidationError("variantId", "must be between 0 and 4")
	}
	return VariantID(id), nil
}

// IsSource reports whether the id refers to the human-written source diary.
func (v VariantID) IsSource() bool { return v == 0 }

// Int returns the numeric value of the id.
func (v VariantID) Int() int { return int(v) }

// StyleVariantIDs returns the ids of all AI style variants (1..NumStyles).
func StyleVariantIDs() []VariantID {
	ids := make([]VariantID, 0, NumStyles)
	for i := 1; i <= NumStyles; i++ {
		ids = append(ids, VariantID(i))
	}
	return ids
}

// DiaryContent is a non-empty diary text. All positional operations are in
// characters (runes), not bytes, so multibyte text slices correctly.
type DiaryContent struct {
	value string
}

// NewDiaryContent validates that text is non-empty.
func NewDiaryContent(text string) (DiaryContent, error) {
	if text == "" {
		return DiaryContent{}, NewValidationError("content", "must not be empty")
	}
	return DiaryContent{value: text}, nil
}

// Value returns the raw text.
func (c DiaryContent) Value() string { return c.value }

// Len returns the length in characters.
func (c DiaryContent) Len() int { return len([]rune(c.value)) }

// First returns the first k characters. k is clamped to [0, Len].
func (c DiaryContent) First(k int) string {
	runes := []rune(c.value)
	if k < 0 {
		k = 0
	}
	if k > len(runes) {
		k = len(runes)
	}
	return string(runes[:k])
}

// After returns the characters after position k. k is clamped to [0, Len].
func (c DiaryContent) After(k int) string {
	runes := []rune(c.value)
	if k < 0 {
		k = 0
	}
	if k > len(runes) {
		k = len(runes)
	}
	return string(runes[k:])
}

// IsBlank reports whether the content is whitespace-only.
func (c DiaryContent) IsBlank() bool { return strings.TrimSpace(c.value) == "" }

// Diary is one immutable (variant id, content) pair. Content changes produce
// a new Diary; a Diary is never mutated in place.
type Diary struct {
	ID      VariantID
	Content DiaryContent
}

// NewDiary builds a Diary from an already-validated id and content.
func NewDiary(id VariantID, content DiaryContent) Diary {
	return Diary{ID: id, Content: content}
}
