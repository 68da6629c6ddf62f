package editor

import (
	"fmt"
	"time"

	"github.com/kobzarvs/hecto/internal/config"
	"github.com/kobzarvs/hecto/internal/document"
	"github.com/kobzarvs/hecto/internal/logger"
	"github.com/kobzarvs/hecto/internal/terminal"
)

const helpMessage = "HELP: Ctrl-C = quit"

const (
	actionQuit       = "quit"
	actionMoveUp     = "move_up"
	actionMoveDown   = "move_down"
	actionMoveLeft   = "move_left"
	actionMoveRight  = "move_right"
	actionPageUp     = "page_up"
	actionPageDown   = "page_down"
	actionLineStart  = "line_start"
	actionLineEnd    = "line_end"
	actionBackspace  = "backspace"
	actionDeleteChar = "delete_char"
	actionNewline    = "newline"
)

// Terminal is the device the editor draws on and reads keys from.
type Terminal interface {
	Size() (width, height int)
	ClearScreen()
	ClearCurrentLine()
	MoveCursorTo(col, row int)
	HideCursor()
	ShowCursor()
	SetFg(c terminal.RGB)
	SetBg(c terminal.RGB)
	ResetFg()
	ResetBg()
	Print(text string)
	Flush() error
	ReadKey() (terminal.Key, error)
}

type statusMessage struct {
	text string
	time time.Time
}

type Editor struct {
	term           Terminal
	doc            *document.Document
	cursor         document.Position
	offset         document.Position
	status         statusMessage
	shouldQuit     bool
	keymap         map[string]string
	statusFg       terminal.RGB
	statusBg       terminal.RGB
	messageTimeout time.Duration
	welcome        string
	now            func() time.Time

	// actionHook observes every dispatched action; used by tests.
	actionHook func(action string)
}

func New(cfg config.Config, term Terminal) *Editor {
	keymap := make(map[string]string, len(cfg.Keymap))
	for k, v := range cfg.Keymap {
		keymap[k] = v
	}
	timeout := time.Duration(cfg.Editor.MessageTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	e := &Editor{
		term:           term,
		doc:            document.New(),
		keymap:         keymap,
		statusFg:       parseColor(cfg.Theme.StatuslineForeground, terminal.RGB{R: 63, G: 63, B: 63}),
		statusBg:       parseColor(cfg.Theme.StatuslineBackground, terminal.RGB{R: 239, G: 239, B: 239}),
		messageTimeout: timeout,
		now:            time.Now,
	}
	e.SetStatusMessage(helpMessage)
	return e
}

// OpenFile replaces the document with the file at path. On failure the
// current document is kept.
func (e *Editor) OpenFile(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	e.doc = doc
	e.cursor = document.Position{}
	e.offset = document.Position{}
	logger.Info("file opened", "path", path, "rows", doc.Len())
	return nil
}

// OpenArgs loads the file named by a single positional argument. Any
// other argument count starts with an empty document. A failed load is
// reported in the message bar, not returned.
func (e *Editor) OpenArgs(args []string) {
	if len(args) != 1 {
		return
	}
	if err := e.OpenFile(args[0]); err != nil {
		logger.Warn("open file failed", "path", args[0], "error", err)
		e.SetStatusMessage(fmt.Sprintf("ERR: Could not open file: %s", args[0]))
	}
}

func (e *Editor) SetStatusMessage(msg string) {
	e.status = statusMessage{text: msg, time: e.now()}
}

// SetWelcome sets the banner shown when the document is empty.
func (e *Editor) SetWelcome(text string) {
	e.welcome = text
}

func (e *Editor) Document() *document.Document {
	return e.doc
}

func (e *Editor) Cursor() document.Position {
	return e.cursor
}

// Run draws a frame and handles one key per iteration until quit.
func (e *Editor) Run() error {
	for {
		if err := e.refreshScreen(); err != nil {
			return fmt.Errorf("refresh screen: %w", err)
		}
		if e.shouldQuit {
			logger.Info("quit requested")
			return nil
		}
		if err := e.processKeypress(); err != nil {
			return err
		}
	}
}

func (e *Editor) processKeypress() error {
	key, err := e.term.ReadKey()
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}
	e.handleKey(key)
	return nil
}

func (e *Editor) handleKey(key terminal.Key) {
	if action, ok := e.keymap[key.String()]; ok && key.Kind != terminal.KeyOther {
		e.execAction(action)
	} else if key.Kind == terminal.KeyChar {
		e.insertRune(key.Rune)
	}
	e.scroll()
}

func (e *Editor) execAction(action string) {
	if e.actionHook != nil {
		e.actionHook(action)
	}
	logger.Debug("action", "name", action, "row", e.cursor.Row, "col", e.cursor.Col)
	switch action {
	case actionQuit:
		e.shouldQuit = true
	case actionMoveUp:
		e.moveCursor(terminal.KeyUp)
	case actionMoveDown:
		e.moveCursor(terminal.KeyDown)
	case actionMoveLeft:
		e.moveCursor(terminal.KeyLeft)
	case actionMoveRight:
		e.moveCursor(terminal.KeyRight)
	case actionPageUp:
		e.moveCursor(terminal.KeyPageUp)
	case actionPageDown:
		e.moveCursor(terminal.KeyPageDown)
	case actionLineStart:
		e.moveCursor(terminal.KeyHome)
	case actionLineEnd:
		e.moveCursor(terminal.KeyEnd)
	case actionBackspace:
		e.backspace()
	case actionDeleteChar:
		e.doc.Delete(e.cursor)
	case actionNewline:
		e.insertRune('\n')
	default:
		logger.Warn("unknown action", "name", action)
	}
}

func (e *Editor) insertRune(r rune) {
	if r == '\r' {
		return
	}
	e.doc.Insert(e.cursor, r)
	e.moveCursor(terminal.KeyRight)
}

func (e *Editor) backspace() {
	if e.cursor == (document.Position{}) {
		return
	}
	e.moveCursor(terminal.KeyLeft)
	e.doc.Delete(e.cursor)
}

// rowLen is the width of row y, or 0 for the append slot.
func (e *Editor) rowLen(y int) int {
	if row := e.doc.Row(y); row != nil {
		return row.Len()
	}
	return 0
}

func (e *Editor) moveCursor(kind terminal.KeyKind) {
	_, height := e.term.Size()
	rows := e.doc.Len()
	x, y := e.cursor.Col, e.cursor.Row

	switch kind {
	case terminal.KeyUp:
		if y > 0 {
			y--
		}
	case terminal.KeyDown:
		if y < rows {
			y++
		}
	case terminal.KeyLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = e.rowLen(y)
		}
	case terminal.KeyRight:
		if x < e.rowLen(y) {
			x++
		} else if y < rows {
			y++
			x = 0
		}
	case terminal.KeyPageUp:
		y -= height
		if y < 0 {
			y = 0
		}
	case terminal.KeyPageDown:
		y += height
		if y > rows {
			y = rows
		}
	case terminal.KeyHome:
		x = 0
	case terminal.KeyEnd:
		x = e.rowLen(y)
	}

	if w := e.rowLen(y); x > w {
		x = w
	}
	e.cursor = document.Position{Col: x, Row: y}
}

// scroll moves the offset so the cursor lies inside the viewport.
func (e *Editor) scroll() {
	width, height := e.term.Size()
	x, y := e.cursor.Col, e.cursor.Row

	if y < e.offset.Row {
		e.offset.Row = y
	} else if y >= e.offset.Row+height {
		e.offset.Row = saturatingSub(y, height) + 1
	}

	if x < e.offset.Col {
		e.offset.Col = x
	} else if x >= e.offset.Col+width {
		e.offset.Col = saturatingSub(x, width) + 1
	}
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func parseColor(value string, fallback terminal.RGB) terminal.RGB {
	if value == "" {
		return fallback
	}
	c, err := terminal.ParseHex(value)
	if err != nil {
		logger.Warn("invalid theme colour", "value", value, "error", err)
		return fallback
	}
	return c
}
