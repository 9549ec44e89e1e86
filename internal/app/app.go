package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/unipick/internal/logging"
	"github.com/atomicstack/unipick/internal/logging/events"
	"github.com/atomicstack/unipick/internal/names"
	"github.com/atomicstack/unipick/internal/picker"
	"github.com/atomicstack/unipick/internal/search"
	"github.com/atomicstack/unipick/internal/store"
	"github.com/atomicstack/unipick/internal/ui"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	StorePath  string
	Mode       string
	Copy       bool
	Hex        bool
	DefaultSet []rune
}

// ErrCancelled reports that the session ended without a chosen character.
var ErrCancelled = errors.New("selection cancelled")

// Run bootstraps and executes the Bubble Tea program, then prints the chosen
// character to stdout. The interactive screen goes to stderr whenever stdout
// is not a terminal, so the result stays pipeable.
func Run(cfg Config) error {
	storePath, err := resolveStorePath(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("resolve store path: %w", err)
	}
	settings, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer settings.Close()

	seed := cfg.DefaultSet
	if len(seed) == 0 {
		seed = picker.DefaultSet()
	}
	recent := picker.NewHistory(picker.DecodeHistory(settings.Get(store.KeyRecent, ""), seed), len(seed))

	mode := picker.ParseMode(settings.Get(store.KeyMode, ""))
	if cfg.Mode != "" {
		mode = picker.ParseMode(cfg.Mode)
	}
	events.Store.Loaded(storePath, mode.String(), recent.Len())

	start := time.Now()
	index := names.NewIndex(names.UnicodeTable())
	events.App.IndexReady(index.Size(), index.WordCount(), time.Since(start))

	model := ui.NewModel(index, search.NewResolver(index), settings, recent, mode, cfg.Width, cfg.Height)
	options := []tea.ProgramOption{tea.WithAltScreen()}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		options = append(options, tea.WithOutput(os.Stderr))
	}
	if _, err := tea.NewProgram(model, options...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			events.Session.Cancel()
			return ErrCancelled
		}
		return fmt.Errorf("run picker: %w", err)
	}

	cp, ok := model.Result()
	if !ok {
		events.Session.Cancel()
		return ErrCancelled
	}
	events.Session.Confirm(cp)

	recent.Promote(cp)
	settings.Set(store.KeyRecent, picker.EncodeHistory(recent.List()))
	if err := settings.Flush(); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	events.Store.Flushed(storePath)

	if cfg.Copy {
		if err := clipboard.WriteAll(string(cp)); err != nil {
			logging.Error(fmt.Errorf("copy to clipboard: %w", err))
		}
	}
	if cfg.Hex {
		fmt.Printf("U+%04X\n", cp)
	} else {
		fmt.Println(string(cp))
	}
	return nil
}

// resolveStorePath picks the settings database location, defaulting to the
// user's configuration directory.
func resolveStorePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, "unipick", "unipick.db"), nil
}
