package models

// TextNote is a note whose payload is plain text.
type TextNote struct {
	NoteMeta
	Text string `db:"content" json:"content"`
}

// NewTextNote creates an unsaved text note with created == modified.
func NewTextNote(title, content string) *TextNote {
	return &TextNote{
		NoteMeta: newMeta(title),
		Text:     content,
	}
}

// Content returns the text payload.
func (n *TextNote) Content() string {
	return n.Text
}

// SetContent replaces the text payload and refreshes the modified timestamp.
func (n *TextNote) SetContent(content string) error {
	n.Text = content
	n.Touch()
	return nil
}

// Type returns the TEXT variant tag.
func (n *TextNote) Type() NoteType {
	return TypeText
}

func (n *TextNote) String() string {
	return noteString(n)
}
