package models

import (
	"fmt"

	"github.com/kimhsiao/notedesk/internal/noterr"
)

// DrawingNote is a note whose payload is a binary image blob.
type DrawingNote struct {
	NoteMeta
	Image []byte `db:"image_data" json:"image_data"`
}

// NewDrawingNote creates an unsaved drawing note with created == modified.
func NewDrawingNote(title string, image []byte) *DrawingNote {
	return &DrawingNote{
		NoteMeta: newMeta(title),
		Image:    image,
	}
}

// Content returns a summary of the image payload, never the raw bytes.
func (n *DrawingNote) Content() string {
	if len(n.Image) == 0 {
		return "Empty drawing"
	}
	return fmt.Sprintf("Drawing with %d bytes", len(n.Image))
}

// SetContent rejects text content on a drawing note. The image payload is
// mutated through SetImage.
func (n *DrawingNote) SetContent(content string) error {
	return noterr.New(noterr.CodeInvalid, "drawing note content is set via SetImage")
}

// SetImage replaces the image payload and refreshes the modified timestamp.
func (n *DrawingNote) SetImage(image []byte) {
	n.Image = image
	n.Touch()
}

// Type returns the DRAWING variant tag.
func (n *DrawingNote) Type() NoteType {
	return TypeDrawing
}

func (n *DrawingNote) String() string {
	return noteString(n)
}
