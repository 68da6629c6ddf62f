package document

import "strings"

// Row is a single line of text. Columns are rune indices.
type Row struct {
	runes []rune
}

func NewRow(text string) Row {
	return Row{runes: []rune(text)}
}

func (r *Row) Len() int {
	return len(r.runes)
}

func (r *Row) String() string {
	return string(r.runes)
}

// Insert puts ch before the rune at index at, or appends it when at is
// past the end of the row.
func (r *Row) Insert(at int, ch rune) {
	if at < 0 {
		return
	}
	if at >= len(r.runes) {
		r.runes = append(r.runes, ch)
		return
	}
	r.runes = append(r.runes, 0)
	copy(r.runes[at+1:], r.runes[at:])
	r.runes[at] = ch
}

func (r *Row) Delete(at int) {
	if at < 0 || at >= len(r.runes) {
		return
	}
	copy(r.runes[at:], r.runes[at+1:])
	r.runes = r.runes[:len(r.runes)-1]
}

func (r *Row) Append(other Row) {
	r.runes = append(r.runes, other.runes...)
}

// Split truncates the row at index at and returns the tail as a new row.
// When at is past the end the row is unchanged and the tail is empty.
func (r *Row) Split(at int) Row {
	if at < 0 || at >= len(r.runes) {
		return Row{}
	}
	tail := append([]rune(nil), r.runes[at:]...)
	r.runes = r.runes[:at]
	return Row{runes: tail}
}

// Render returns the runes in [start, min(end, Len())) with tabs shown as
// a single space.
func (r *Row) Render(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(r.runes) {
		end = len(r.runes)
	}
	if start >= end {
		return ""
	}
	var b strings.Builder
	b.Grow(end - start)
	for _, ch := range r.runes[start:end] {
		if ch == '\t' {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}
