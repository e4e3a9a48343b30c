// Package db provides unit tests for the note persistence gateway.
package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimhsiao/notedesk/internal/models"
	"github.com/kimhsiao/notedesk/internal/noterr"
)

// setupTestStore opens a migrated store over a temp-dir database.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	database, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, Migrate(database))

	store := NewStore(database)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAssignsID(t *testing.T) {
	store := setupTestStore(t)

	note := models.NewTextNote("My First Note", "Hello")
	require.Zero(t, note.ID)

	require.NoError(t, store.Save(note))
	assert.Equal(t, int64(1), note.ID)

	second := models.NewTextNote("Another", "")
	require.NoError(t, store.Save(second))
	assert.Equal(t, int64(2), second.ID)
}

func TestTextNoteRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	note := models.NewTextNote("My First Note", "Hello")
	require.NoError(t, store.Save(note))

	got, err := store.GetByID(note.ID)
	require.NoError(t, err)

	text, ok := got.(*models.TextNote)
	require.True(t, ok, "expected *models.TextNote, got %T", got)
	assert.Equal(t, "My First Note", text.Title)
	assert.Equal(t, models.TypeText, text.Type())
	assert.Equal(t, "Hello", text.Content())
	assert.Equal(t, note.CreatedAt, text.CreatedAt)
	assert.GreaterOrEqual(t, text.ModifiedAt, text.CreatedAt)
}

func TestDrawingNoteRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	note := models.NewDrawingNote("Sketch", []byte{1, 2, 3})
	require.NoError(t, store.Save(note))

	got, err := store.GetByID(note.ID)
	require.NoError(t, err)

	drawing, ok := got.(*models.DrawingNote)
	require.True(t, ok, "expected *models.DrawingNote, got %T", got)
	assert.Equal(t, "Sketch", drawing.Title)
	assert.Equal(t, models.TypeDrawing, drawing.Type())
	assert.Equal(t, []byte{1, 2, 3}, drawing.Image)
	assert.Equal(t, "Drawing with 3 bytes", drawing.Content())
	assert.Equal(t, note.CreatedAt, drawing.CreatedAt)
}

func TestVariantsDoNotCrossContaminate(t *testing.T) {
	store := setupTestStore(t)

	text := models.NewTextNote("text", "body")
	drawing := models.NewDrawingNote("drawing", []byte{9})
	require.NoError(t, store.Save(text))
	require.NoError(t, store.Save(drawing))

	// A TextNote row never carries image data, a DrawingNote row never
	// carries text content.
	var contentNull, imageNull bool
	err := store.db.QueryRow(
		`SELECT content IS NULL, image_data IS NULL FROM notes WHERE id = ?`, text.ID,
	).Scan(&contentNull, &imageNull)
	require.NoError(t, err)
	assert.False(t, contentNull)
	assert.True(t, imageNull)

	err = store.db.QueryRow(
		`SELECT content IS NULL, image_data IS NULL FROM notes WHERE id = ?`, drawing.ID,
	).Scan(&contentNull, &imageNull)
	require.NoError(t, err)
	assert.True(t, contentNull)
	assert.False(t, imageNull)
}

func TestUpdate(t *testing.T) {
	store := setupTestStore(t)

	note := models.NewTextNote("before", "old")
	require.NoError(t, store.Save(note))

	time.Sleep(2 * time.Millisecond)
	note.SetTitle("after")
	require.NoError(t, note.SetContent("new"))
	require.NoError(t, store.Update(note))

	got, err := store.GetByID(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Meta().Title)
	assert.Equal(t, "new", got.Content())
	assert.Greater(t, got.Meta().ModifiedAt, got.Meta().CreatedAt)
}

func TestUpdateMissingNote(t *testing.T) {
	store := setupTestStore(t)

	existing := models.NewTextNote("keep", "untouched")
	require.NoError(t, store.Save(existing))

	ghost := models.NewTextNote("ghost", "")
	ghost.ID = 99999
	err := store.Update(ghost)
	require.Error(t, err)
	assert.True(t, noterr.Is(err, noterr.CodeNotFound))

	// The failed update must not alter any stored row.
	got, err := store.GetByID(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Meta().Title)
	assert.Equal(t, "untouched", got.Content())
}

func TestDelete(t *testing.T) {
	store := setupTestStore(t)

	a := models.NewTextNote("a", "")
	b := models.NewTextNote("b", "")
	require.NoError(t, store.Save(a))
	require.NoError(t, store.Save(b))

	require.NoError(t, store.Delete(a.ID))

	notes, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, b.ID, notes[0].Meta().ID)

	_, err = store.GetByID(a.ID)
	assert.True(t, noterr.Is(err, noterr.CodeNotFound))
}

func TestDeleteMissingNote(t *testing.T) {
	store := setupTestStore(t)

	err := store.Delete(99999)
	require.Error(t, err)
	assert.True(t, noterr.Is(err, noterr.CodeNotFound))
}

func TestGetByIDMissingNote(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetByID(99999)
	require.Error(t, err)
	assert.True(t, noterr.Is(err, noterr.CodeNotFound))
}

func TestGetAllOrdersByModifiedDesc(t *testing.T) {
	store := setupTestStore(t)

	a := models.NewTextNote("A", "")
	require.NoError(t, store.Save(a))
	time.Sleep(2 * time.Millisecond)

	b := models.NewTextNote("B", "")
	require.NoError(t, store.Save(b))

	notes, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, b.ID, notes[0].Meta().ID)
	assert.Equal(t, a.ID, notes[1].Meta().ID)

	// Updating A makes it the most recently touched again.
	time.Sleep(2 * time.Millisecond)
	a.Touch()
	require.NoError(t, store.Update(a))

	notes, err = store.GetAll()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, a.ID, notes[0].Meta().ID)
	assert.Equal(t, b.ID, notes[1].Meta().ID)
}

func TestUnknownTypeTagLoadsAsText(t *testing.T) {
	store := setupTestStore(t)

	// Rows written by older builds may carry tags this build does not know.
	now := time.Now().UnixMilli()
	_, err := store.db.Exec(
		`INSERT INTO notes (title, content, type, image_data, created_date, modified_date)
		 VALUES (?, ?, ?, NULL, ?, ?)`,
		"stray", "ignored", "VOICE", now, now)
	require.NoError(t, err)

	got, err := store.GetByID(1)
	require.NoError(t, err)

	text, ok := got.(*models.TextNote)
	require.True(t, ok, "expected *models.TextNote, got %T", got)
	assert.Equal(t, "stray", text.Title)
	assert.Equal(t, "", text.Content())
}

func TestCloseIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	err := store.Save(models.NewTextNote("late", ""))
	require.Error(t, err)
	assert.True(t, noterr.Is(err, noterr.CodeStore))
}

// The end-to-end scenario: two variants saved, read back, reordered and
// pruned the way the UI drives the gateway.
func TestScenario(t *testing.T) {
	store := setupTestStore(t)

	text := models.NewTextNote("My First Note", "Hello")
	require.NoError(t, store.Save(text))
	require.Equal(t, int64(1), text.ID)

	got, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "My First Note", got.Meta().Title)
	assert.Equal(t, models.TypeText, got.Type())
	assert.Equal(t, "Hello", got.Content())

	time.Sleep(2 * time.Millisecond)
	drawing := models.NewDrawingNote("Sketch", []byte{1, 2, 3})
	require.NoError(t, store.Save(drawing))
	require.Equal(t, int64(2), drawing.ID)

	got, err = store.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Drawing with 3 bytes", got.Content())

	notes, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(2), notes[0].Meta().ID)
	assert.Equal(t, int64(1), notes[1].Meta().ID)

	require.NoError(t, store.Delete(1))
	notes, err = store.GetAll()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, int64(2), notes[0].Meta().ID)
}
