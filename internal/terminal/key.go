package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyChar
	KeyCtrl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
)

// Key is one decoded keypress. Rune is set for KeyChar and KeyCtrl; for
// KeyCtrl it is the lower-case letter that was held with Ctrl.
type Key struct {
	Kind KeyKind
	Rune rune
}

func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

func Ctrl(r rune) Key {
	return Key{Kind: KeyCtrl, Rune: unicode.ToLower(r)}
}

func Special(kind KeyKind) Key {
	return Key{Kind: kind}
}

// String returns the keymap name of the key.
func (k Key) String() string {
	switch k.Kind {
	case KeyChar:
		switch k.Rune {
		case '\n':
			return "enter"
		case '\t':
			return "tab"
		case ' ':
			return "space"
		}
		return string(k.Rune)
	case KeyCtrl:
		return "ctrl+" + string(k.Rune)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdn"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "del"
	}
	return ""
}

func keyFromEvent(ev *tcell.EventKey) Key {
	// Tab, Enter and Backspace share codes with Ctrl-I, Ctrl-M and Ctrl-H,
	// so they are matched before the Ctrl range.
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return Ctrl(ev.Rune())
		}
		return Char(ev.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		return Char('\n')
	case tcell.KeyTab:
		return Char('\t')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Special(KeyBackspace)
	case tcell.KeyDelete:
		return Special(KeyDelete)
	case tcell.KeyUp:
		return Special(KeyUp)
	case tcell.KeyDown:
		return Special(KeyDown)
	case tcell.KeyLeft:
		return Special(KeyLeft)
	case tcell.KeyRight:
		return Special(KeyRight)
	case tcell.KeyPgUp:
		return Special(KeyPageUp)
	case tcell.KeyPgDn:
		return Special(KeyPageDown)
	case tcell.KeyHome:
		return Special(KeyHome)
	case tcell.KeyEnd:
		return Special(KeyEnd)
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Ctrl(rune('a' + int(k-tcell.KeyCtrlA)))
	}
	return Special(KeyOther)
}
