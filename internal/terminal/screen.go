package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ReservedRows is the number of rows below the document viewport, used
// by the status bar and the message bar.
const ReservedRows = 2

var ErrClosed = errors.New("terminal closed")

// Screen owns the controlling terminal in raw mode. Output goes through a
// pen into tcell's back buffer and reaches the device on Flush.
type Screen struct {
	s      tcell.Screen
	penX   int
	penY   int
	style  tcell.Style
	closed bool
}

// Open puts the controlling terminal in raw mode.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewScreen(s)
}

// NewScreen initialises s and wraps it.
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if w, h := s.Size(); w <= 0 || h <= 0 {
		s.Fini()
		return nil, fmt.Errorf("query terminal size: got %dx%d", w, h)
	}
	return &Screen{s: s, style: tcell.StyleDefault}, nil
}

// Close clears the screen and restores the terminal. It is safe to call
// more than once.
func (t *Screen) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.s.Clear()
	t.s.ShowCursor(0, 0)
	t.s.Show()
	t.s.Fini()
}

// Size returns the document viewport: the full width and the height
// minus the reserved bar rows.
func (t *Screen) Size() (width, height int) {
	w, h := t.s.Size()
	h -= ReservedRows
	if h < 0 {
		h = 0
	}
	return w, h
}

func (t *Screen) ClearScreen() {
	t.s.Clear()
}

func (t *Screen) ClearCurrentLine() {
	w, _ := t.s.Size()
	for x := 0; x < w; x++ {
		t.s.SetContent(x, t.penY, ' ', nil, t.style)
	}
}

func (t *Screen) MoveCursorTo(col, row int) {
	t.penX = col
	t.penY = row
}

func (t *Screen) HideCursor() {
	t.s.HideCursor()
}

// ShowCursor shows the hardware cursor at the pen position.
func (t *Screen) ShowCursor() {
	t.s.ShowCursor(t.penX, t.penY)
}

func (t *Screen) SetFg(c RGB) {
	t.style = t.style.Foreground(c.color())
}

func (t *Screen) SetBg(c RGB) {
	t.style = t.style.Background(c.color())
}

func (t *Screen) ResetFg() {
	t.style = t.style.Foreground(tcell.ColorDefault)
}

func (t *Screen) ResetBg() {
	t.style = t.style.Background(tcell.ColorDefault)
}

// Print writes text at the pen. '\r' returns to column 0 and '\n' moves
// down one row; every other rune takes one cell.
func (t *Screen) Print(text string) {
	w, h := t.s.Size()
	for _, r := range text {
		switch r {
		case '\r':
			t.penX = 0
		case '\n':
			t.penY++
		default:
			if t.penX >= 0 && t.penX < w && t.penY >= 0 && t.penY < h {
				t.s.SetContent(t.penX, t.penY, r, nil, t.style)
			}
			t.penX++
		}
	}
}

func (t *Screen) Flush() error {
	if t.closed {
		return ErrClosed
	}
	t.s.Show()
	return nil
}

// ReadKey blocks until the next keypress. A resize is reported as
// KeyOther so the caller redraws at the new size.
func (t *Screen) ReadKey() (Key, error) {
	for {
		ev := t.s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return Key{}, ErrClosed
		case *tcell.EventKey:
			return keyFromEvent(ev), nil
		case *tcell.EventResize:
			t.s.Sync()
			return Special(KeyOther), nil
		case *tcell.EventError:
			return Key{}, fmt.Errorf("read key: %w", ev)
		}
	}
}
