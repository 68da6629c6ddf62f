package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/hecto/internal/terminal"
)

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Runes[0])
	}
	return string(out)
}

func render(t *testing.T, e *Editor) {
	t.Helper()
	if err := e.refreshScreen(); err != nil {
		t.Fatalf("refreshScreen: %v", err)
	}
}

func pad(s string, w int) string {
	return s + strings.Repeat(" ", w-len([]rune(s)))
}

// The viewport is 80x24, so the physical screen is 80x26 with the status
// and message bars below it. The banner sits on row 24/3.
func TestRenderWelcomeBanner(t *testing.T) {
	e, sim := newTestEditor(t, 80, 24)
	banner := "Hecto editor -- version 1.2.3"
	e.SetWelcome(banner)
	render(t, e)

	for y := 0; y < 24; y++ {
		got := rowText(sim, y)
		if y == 8 {
			padding := (80 - len(banner)) / 2
			want := pad("~"+strings.Repeat(" ", padding-1)+banner, 80)
			if got != want {
				t.Fatalf("banner row = %q, want %q", got, want)
			}
			continue
		}
		if got != pad("~", 80) {
			t.Fatalf("row %d = %q, want %q", y, got, "~")
		}
	}
	x, y, visible := sim.GetCursor()
	if !visible || x != 0 || y != 0 {
		t.Fatalf("cursor = (%d,%d) visible=%v, want (0,0) visible", x, y, visible)
	}
}

func TestRenderWelcomeTruncated(t *testing.T) {
	e, sim := newTestEditor(t, 10, 6)
	e.SetWelcome("a banner far wider than the screen")
	render(t, e)
	if got := rowText(sim, 2); got != "~a banner " {
		t.Fatalf("banner row = %q, want %q", got, "~a banner ")
	}
}

func TestRenderNoBannerWhenDocumentHasRows(t *testing.T) {
	e, sim := newTestEditor(t, 20, 6, "one", "two")
	e.SetWelcome("banner")
	render(t, e)
	want := []string{"one", "two", "~", "~", "~", "~"}
	for y, line := range want {
		if got := rowText(sim, y); got != pad(line, 20) {
			t.Fatalf("row %d = %q, want %q", y, got, line)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	e, sim := newTestEditor(t, 40, 5)
	render(t, e)
	want := pad("[No Name] - 0 lines", 37) + "1/0"
	if got := rowText(sim, 5); got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}

	cells, w, _ := sim.GetContents()
	fg, bg, _ := cells[5*w].Style.Decompose()
	if fg != tcell.NewRGBColor(63, 63, 63) || bg != tcell.NewRGBColor(239, 239, 239) {
		t.Fatalf("status colours = %v/%v", fg, bg)
	}
	_, msgBg, _ := cells[6*w].Style.Decompose()
	if msgBg != tcell.ColorDefault {
		t.Fatalf("message bar background = %v, want default", msgBg)
	}
}

func TestRenderStatusBarFilenameTruncated(t *testing.T) {
	e, sim := newTestEditor(t, 80, 5, "a", "b", "c")
	press(e, key(terminal.KeyDown))
	render(t, e)
	got := rowText(sim, 5)
	fn := e.Document().Filename()
	if len([]rune(fn)) <= 20 {
		t.Fatalf("temp path %q too short for the test", fn)
	}
	left := string([]rune(fn)[:20]) + " - 3 lines"
	if !strings.HasPrefix(got, left) {
		t.Fatalf("status = %q, want prefix %q", got, left)
	}
	if !strings.HasSuffix(got, "2/3") {
		t.Fatalf("status = %q, want suffix %q", got, "2/3")
	}
}

func TestComposeStatusLine(t *testing.T) {
	cases := []struct {
		left, right string
		width       int
		want        string
	}{
		{"ab", "cd", 6, "ab  cd"},
		{"ab", "cd", 4, "abcd"},
		{"abc", "de", 4, "abcd"},
		{"ab", "cd", 0, ""},
		{"日本", "1/1", 7, "日本  1/1"},
	}
	for _, tc := range cases {
		if got := composeStatusLine(tc.left, tc.right, tc.width); got != tc.want {
			t.Fatalf("composeStatusLine(%q, %q, %d) = %q, want %q", tc.left, tc.right, tc.width, got, tc.want)
		}
	}
}

func TestRenderHorizontalScrollSlice(t *testing.T) {
	e, sim := newTestEditor(t, 10, 5, strings.Repeat("x", 21)+"abcdefghi")
	press(e, key(terminal.KeyEnd))
	render(t, e)
	if got := rowText(sim, 0); got != "abcdefghi " {
		t.Fatalf("row 0 = %q, want %q", got, "abcdefghi ")
	}
	x, y, _ := sim.GetCursor()
	if x != 9 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want (9,0)", x, y)
	}
}

func TestRenderTabsAsSpaces(t *testing.T) {
	e, sim := newTestEditor(t, 10, 3, "a\tb")
	render(t, e)
	if got := rowText(sim, 0); got != pad("a b", 10) {
		t.Fatalf("row 0 = %q, want %q", got, "a b")
	}
}

func TestRenderMessageExpiry(t *testing.T) {
	e, sim := newTestEditor(t, 80, 24)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return clock }
	e.OpenArgs([]string{"/no/such/file"})

	render(t, e)
	if got := rowText(sim, 25); got != pad("ERR: Could not open file: /no/such/file", 80) {
		t.Fatalf("message bar = %q", got)
	}

	clock = clock.Add(6 * time.Second)
	press(e, key(terminal.KeyOther))
	render(t, e)
	if got := rowText(sim, 25); got != pad("", 80) {
		t.Fatalf("message bar = %q, want blank", got)
	}
}

func TestRenderMessageTruncated(t *testing.T) {
	e, sim := newTestEditor(t, 8, 3)
	e.SetStatusMessage("a long status message")
	render(t, e)
	if got := rowText(sim, 4); got != "a long s" {
		t.Fatalf("message bar = %q, want %q", got, "a long s")
	}
}

func TestRenderQuitFrame(t *testing.T) {
	e, sim := newTestEditor(t, 20, 5, "text")
	press(e, terminal.Ctrl('c'))
	render(t, e)
	if got := rowText(sim, 0); got != pad("Goodbye.", 20) {
		t.Fatalf("row 0 = %q, want Goodbye.", got)
	}
	if got := rowText(sim, 1); got != pad("", 20) {
		t.Fatalf("row 1 = %q, want blank", got)
	}
}

func TestRenderCursorFollowsOffset(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	// Wide enough for a truncated 20-rune filename, the line count and 13/20.
	e, sim := newTestEditor(t, 40, 5, lines...)
	for i := 0; i < 12; i++ {
		press(e, key(terminal.KeyDown))
	}
	press(e, key(terminal.KeyEnd))
	render(t, e)
	x, y, visible := sim.GetCursor()
	if !visible || x != 4 || y != 4 {
		t.Fatalf("cursor = (%d,%d) visible=%v, want (4,4)", x, y, visible)
	}
	if got := rowText(sim, 5); !strings.HasSuffix(got, "13/20") {
		t.Fatalf("status = %q, want suffix 13/20", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		s    string
		n    int
		want string
	}{
		{"hello", 3, "hel"},
		{"hello", 10, "hello"},
		{"héllo", 2, "hé"},
		{"abc", 0, ""},
		{"", 4, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.s, tc.n); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.s, tc.n, got, tc.want)
		}
	}
}
