package app

import (
	"fmt"
	"io"
	"os"

	"github.com/kobzarvs/hecto"
	"github.com/kobzarvs/hecto/internal/config"
	"github.com/kobzarvs/hecto/internal/editor"
	"github.com/kobzarvs/hecto/internal/logger"
	"github.com/kobzarvs/hecto/internal/terminal"
)

type Options struct {
	ConfigPath string
	Debug      bool
}

// App is the top-level runtime for hecto.
type App struct {
	args []string
	opts Options

	openScreen func() (*terminal.Screen, error)
	stdout     io.Writer
}

func New(args []string, opts Options) *App {
	return &App{
		args:       args,
		opts:       opts,
		openScreen: terminal.Open,
		stdout:     os.Stdout,
	}
}

func (a *App) loadConfig() (config.Config, error) {
	if a.opts.ConfigPath != "" {
		return config.LoadFile(a.opts.ConfigPath)
	}
	return config.Load()
}

// Run owns the terminal until the editor quits. The terminal is restored
// on every return path, including panics.
func (a *App) Run() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(a.opts.Debug); err != nil {
		fmt.Fprintln(os.Stderr, "hecto: logging disabled:", err)
	}
	defer logger.Close()

	scr, err := a.openScreen()
	if err != nil {
		logger.Error("open terminal", "error", err)
		return err
	}
	defer scr.Close()

	ed := editor.New(cfg, scr)
	ed.SetWelcome(WelcomeMessage())
	ed.OpenArgs(a.args)

	if err := ed.Run(); err != nil {
		logger.Error("editor stopped", "error", err)
		return err
	}

	// The quit frame is wiped with the alternate screen, so repeat it on
	// the restored terminal.
	scr.Close()
	fmt.Fprintln(a.stdout, "Goodbye.")
	return nil
}

func WelcomeMessage() string {
	return fmt.Sprintf("Hecto editor -- version %s", hecto.Version())
}
