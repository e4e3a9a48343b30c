// Package models provides the note variants persisted by NoteDesk.
package models

import (
	"fmt"
	"time"
)

// NoteType tags the persisted variant of a note. The tag is fixed at
// construction and is the sole dispatch key when rows are decoded.
type NoteType string

const (
	TypeText    NoteType = "TEXT"
	TypeDrawing NoteType = "DRAWING"
)

// Note is the capability set shared by all note variants.
type Note interface {
	fmt.Stringer

	// Meta returns the identity and timestamp fields shared by every variant.
	Meta() *NoteMeta
	// Content returns a human-readable rendering of the variant payload.
	Content() string
	// SetContent replaces the variant payload where the variant supports it.
	SetContent(content string) error
	// Type returns the variant tag.
	Type() NoteType
}

// NoteMeta holds the fields common to every note variant. The zero ID marks
// a note that has never been saved; the store assigns the real id on first
// insert and it never changes afterwards. Timestamps are epoch milliseconds,
// matching the on-disk column format.
type NoteMeta struct {
	ID         int64  `db:"id" json:"id"`
	Title      string `db:"title" json:"title"`
	CreatedAt  int64  `db:"created_date" json:"created_date"`
	ModifiedAt int64  `db:"modified_date" json:"modified_date"`
}

// Meta returns the shared fields; promoted onto every variant.
func (m *NoteMeta) Meta() *NoteMeta {
	return m
}

// SetTitle replaces the title and refreshes the modified timestamp.
func (m *NoteMeta) SetTitle(title string) {
	m.Title = title
	m.Touch()
}

// Touch refreshes the modified timestamp.
func (m *NoteMeta) Touch() {
	m.ModifiedAt = nowMillis()
}

// CreatedTime returns CreatedAt as time.Time.
func (m *NoteMeta) CreatedTime() time.Time {
	return time.UnixMilli(m.CreatedAt)
}

// ModifiedTime returns ModifiedAt as time.Time.
func (m *NoteMeta) ModifiedTime() time.Time {
	return time.UnixMilli(m.ModifiedAt)
}

func newMeta(title string) NoteMeta {
	now := nowMillis()
	return NoteMeta{
		Title:      title,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func noteString(n Note) string {
	return fmt.Sprintf("%s: %s (ID: %d)", n.Type(), n.Meta().Title, n.Meta().ID)
}
