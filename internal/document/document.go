package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Position addresses a rune column inside a row. Row may equal Len() of
// the document, which names the empty slot after the last row.
type Position struct {
	Col int
	Row int
}

type Document struct {
	rows     []Row
	filename string
}

func New() *Document {
	return &Document{}
}

// Load reads path and splits it into rows on '\n'. A trailing newline
// does not produce an empty final row.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return &Document{rows: splitRows(string(data)), filename: path}, nil
}

func splitRows(text string) []Row {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	rows := make([]Row, len(parts))
	for i, p := range parts {
		p = strings.TrimSuffix(p, "\r")
		if strings.ContainsRune(p, '\r') {
			p = strings.ReplaceAll(p, "\r", "")
		}
		rows[i] = NewRow(p)
	}
	return rows
}

func (d *Document) Filename() string {
	return d.filename
}

func (d *Document) Len() int {
	return len(d.rows)
}

func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// Row returns the row at index y, or nil when y is out of range.
func (d *Document) Row(y int) *Row {
	if y < 0 || y >= len(d.rows) {
		return nil
	}
	return &d.rows[y]
}

func (d *Document) Insert(at Position, ch rune) {
	if at.Row < 0 || at.Row > len(d.rows) {
		return
	}
	switch {
	case ch == '\n':
		d.InsertNewline(at)
	case ch == '\r':
	case at.Row == len(d.rows):
		var row Row
		row.Insert(0, ch)
		d.rows = append(d.rows, row)
	default:
		d.rows[at.Row].Insert(at.Col, ch)
	}
}

func (d *Document) InsertNewline(at Position) {
	if at.Row < 0 || at.Row > len(d.rows) {
		return
	}
	if at.Row == len(d.rows) {
		d.rows = append(d.rows, Row{})
		return
	}
	tail := d.rows[at.Row].Split(at.Col)
	d.rows = append(d.rows, Row{})
	copy(d.rows[at.Row+2:], d.rows[at.Row+1:])
	d.rows[at.Row+1] = tail
}

// Delete removes the rune at the position. At the end of a row that has
// a successor the two rows are joined.
func (d *Document) Delete(at Position) {
	if at.Row < 0 || at.Row >= len(d.rows) {
		return
	}
	row := &d.rows[at.Row]
	if at.Col == row.Len() && at.Row < len(d.rows)-1 {
		next := d.rows[at.Row+1]
		d.rows = append(d.rows[:at.Row+1], d.rows[at.Row+2:]...)
		d.rows[at.Row].Append(next)
		return
	}
	row.Delete(at.Col)
}

// Content joins the rows with '\n'.
func (d *Document) Content() string {
	var b strings.Builder
	for i := range d.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.rows[i].String())
	}
	return b.String()
}
