// Package db provides the CRUD gateway for note persistence.
package db

import (
	"database/sql"
	"errors"
	"log/slog"
	"sync"

	"github.com/kimhsiao/notedesk/internal/logging"
	"github.com/kimhsiao/notedesk/internal/models"
	"github.com/kimhsiao/notedesk/internal/noterr"
)

const noteColumns = "id, title, content, type, image_data, created_date, modified_date"

// Store is the persistence gateway for notes. Every operation runs under a
// single mutex for its full duration; the underlying connection is not safe
// for concurrent use. The store owns the connection for the process lifetime
// and is handed by reference to whichever component needs it.
type Store struct {
	mu     sync.Mutex
	db     *DB
	closed bool
}

// NewStore creates a Store over an open database.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Save inserts the note as a new row and assigns the store-generated id
// back onto it. Exactly one payload column is populated, by variant.
func (s *Store) Save(note models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, image, err := payloadColumns(note)
	if err != nil {
		return err
	}

	meta := note.Meta()
	query := `
	INSERT INTO notes (title, content, type, image_data, created_date, modified_date)
	VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := s.db.Exec(query, meta.Title, content, string(note.Type()), image,
		meta.CreatedAt, meta.ModifiedAt)
	if err != nil {
		return noterr.Wrap(noterr.CodeStore, "save note", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return noterr.Wrap(noterr.CodeStore, "save note", err)
	}
	if rows == 0 {
		return noterr.New(noterr.CodeStore, "save note: no rows affected")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return noterr.Wrap(noterr.CodeStore, "save note: no id obtained", err)
	}
	meta.ID = id

	return nil
}

// Update rewrites title, payload and modified timestamp for the row
// matching the note's id.
func (s *Store) Update(note models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, image, err := payloadColumns(note)
	if err != nil {
		return err
	}

	meta := note.Meta()
	query := `UPDATE notes SET title = ?, content = ?, image_data = ?, modified_date = ? WHERE id = ?`
	res, err := s.db.Exec(query, meta.Title, content, image, meta.ModifiedAt, meta.ID)
	if err != nil {
		return noterr.Wrap(noterr.CodeStore, "update note", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return noterr.Wrap(noterr.CodeStore, "update note", err)
	}
	if rows == 0 {
		return noterr.Newf(noterr.CodeNotFound, "update note: note %d not found", meta.ID)
	}

	return nil
}

// Delete removes the row with the given id.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return noterr.Wrap(noterr.CodeStore, "delete note", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return noterr.Wrap(noterr.CodeStore, "delete note", err)
	}
	if rows == 0 {
		return noterr.Newf(noterr.CodeNotFound, "delete note: note %d not found", id)
	}

	return nil
}

// GetByID returns the note reconstructed from the matching row. The stored
// type tag decides which variant is instantiated.
func (s *Store) GetByID(id int64) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, noterr.Newf(noterr.CodeNotFound, "note %d not found", id)
		}
		return nil, noterr.Wrap(noterr.CodeStore, "get note", err)
	}

	return note, nil
}

// GetAll returns every note, most recently modified first. Equal timestamps
// fall back to id order so the result is deterministic.
func (s *Store) GetAll() ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT ` + noteColumns + ` FROM notes ORDER BY modified_date DESC, id DESC`)
	if err != nil {
		return nil, noterr.Wrap(noterr.CodeStore, "list notes", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, noterr.Wrap(noterr.CodeStore, "list notes", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, noterr.Wrap(noterr.CodeStore, "list notes", err)
	}

	return notes, nil
}

// Close releases the connection. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return noterr.Wrap(noterr.CodeStore, "close store", err)
	}
	return nil
}

// payloadColumns maps a note variant onto the content/image_data column
// pair. A TextNote never carries image data and a DrawingNote never carries
// text content.
func payloadColumns(note models.Note) (sql.NullString, []byte, error) {
	switch n := note.(type) {
	case *models.TextNote:
		return sql.NullString{String: n.Text, Valid: true}, nil, nil
	case *models.DrawingNote:
		return sql.NullString{}, n.Image, nil
	default:
		return sql.NullString{}, nil, noterr.Newf(noterr.CodeInvalid, "unsupported note variant %T", note)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reconstructs a note from a row. Unknown type tags load as a text
// note with empty content so databases written by older builds stay readable.
func scanNote(sc rowScanner) (models.Note, error) {
	var (
		id                int64
		title, typ        string
		content           sql.NullString
		image             []byte
		created, modified int64
	)
	if err := sc.Scan(&id, &title, &content, &typ, &image, &created, &modified); err != nil {
		return nil, err
	}

	meta := models.NoteMeta{
		ID:         id,
		Title:      title,
		CreatedAt:  created,
		ModifiedAt: modified,
	}

	switch models.NoteType(typ) {
	case models.TypeText:
		note := &models.TextNote{NoteMeta: meta}
		if content.Valid {
			note.Text = content.String
		}
		return note, nil
	case models.TypeDrawing:
		return &models.DrawingNote{NoteMeta: meta, Image: image}, nil
	default:
		logging.Warn("unknown note type tag, loading as text",
			slog.String("type", typ), slog.Int64("id", id))
		return &models.TextNote{NoteMeta: meta}, nil
	}
}
