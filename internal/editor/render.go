package editor

import (
	"fmt"
	"strings"
)

const (
	filenameWidth = 20
	noName        = "[No Name]"
)

// refreshScreen draws one frame. The cursor is hidden while drawing and
// everything is flushed in a single batch.
func (e *Editor) refreshScreen() error {
	e.term.HideCursor()
	e.term.MoveCursorTo(0, 0)
	if e.shouldQuit {
		e.term.ClearScreen()
		e.term.Print("Goodbye.\r\n")
	} else {
		e.drawRows()
		e.drawStatusBar()
		e.drawMessageBar()
		e.term.MoveCursorTo(
			saturatingSub(e.cursor.Col, e.offset.Col),
			saturatingSub(e.cursor.Row, e.offset.Row),
		)
	}
	e.term.ShowCursor()
	return e.term.Flush()
}

func (e *Editor) drawRows() {
	width, height := e.term.Size()
	for y := 0; y < height; y++ {
		e.term.ClearCurrentLine()
		if row := e.doc.Row(y + e.offset.Row); row != nil {
			e.term.Print(row.Render(e.offset.Col, e.offset.Col+width) + "\r\n")
		} else if e.doc.IsEmpty() && y == height/3 {
			e.drawWelcome(width)
		} else {
			e.term.Print("~\r\n")
		}
	}
}

// drawWelcome centres the banner behind the row's "~" marker.
func (e *Editor) drawWelcome(width int) {
	msg := []rune(e.welcome)
	padding := saturatingSub(width, len(msg)) / 2
	line := "~" + strings.Repeat(" ", saturatingSub(padding, 1)) + string(msg)
	e.term.Print(truncate(line, width) + "\r\n")
}

func (e *Editor) drawStatusBar() {
	width, _ := e.term.Size()
	name := noName
	if fn := e.doc.Filename(); fn != "" {
		name = truncate(fn, filenameWidth)
	}
	left := fmt.Sprintf("%s - %d lines", name, e.doc.Len())
	right := fmt.Sprintf("%d/%d", e.cursor.Row+1, e.doc.Len())

	e.term.SetBg(e.statusBg)
	e.term.SetFg(e.statusFg)
	e.term.Print(composeStatusLine(left, right, width) + "\r\n")
	e.term.ResetFg()
	e.term.ResetBg()
}

// drawMessageBar shows the status message until it expires. Expiry is
// only checked here, so a stale message stays until the next frame.
func (e *Editor) drawMessageBar() {
	e.term.ClearCurrentLine()
	if e.now().Sub(e.status.time) < e.messageTimeout {
		width, _ := e.term.Size()
		e.term.Print(truncate(e.status.text, width))
	}
}

// composeStatusLine pads between left and right to fill width, then
// truncates the result to width.
func composeStatusLine(left, right string, width int) string {
	used := len([]rune(left)) + len([]rune(right))
	line := left + strings.Repeat(" ", saturatingSub(width, used)) + right
	return truncate(line, width)
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
