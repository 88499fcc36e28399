// Package app provides the core application service for Wails bindings.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/VirajParab/zeno/broadcast"
	"github.com/VirajParab/zeno/config"
	"github.com/VirajParab/zeno/hotkey"
	"github.com/VirajParab/zeno/internal/journal"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// Service wires the global shortcut to the event broadcast and is bound to
// Wails. This struct focuses on orchestration; the registration and
// broadcast logic live in the hotkey and broadcast packages.
type Service struct {
	cfg       *config.Config
	bus       *broadcast.Bus
	registrar *hotkey.Registrar
	journal   *journal.Journal

	// UI references - set via Init
	app    *application.App
	window application.Window

	// Version info (set by caller)
	version string
}

// New creates a new Service. Call Init() after the Wails app is created.
func New(version string, cfg *config.Config) *Service {
	return &Service{version: version, cfg: cfg}
}

// GetVersion returns the application version.
func (s *Service) GetVersion() string {
	return s.version
}

// Hotkey returns the configured global shortcut chord.
func (s *Service) Hotkey() string {
	return s.cfg.Hotkey
}

// Init initializes the service with app and window references and registers
// the global shortcut. A registration failure is fatal to startup: the
// caller must abort with a non-zero exit instead of running without the
// shortcut, since nothing else would reveal that the feature is broken.
func (s *Service) Init(app *application.App, window application.Window) error {
	s.app = app
	s.window = window
	s.bus = broadcast.New(broadcast.WailsEmitter{App: app})

	// The journal is best-effort; the bridge works without it.
	s.setupJournal()

	if err := s.setupHotkey(); err != nil {
		return err
	}
	return nil
}

// Shutdown cleans up resources. The bus is closed first so a late shortcut
// press fails with a broadcast error instead of reaching a dying app handle.
func (s *Service) Shutdown() {
	if s.bus != nil {
		s.bus.Close()
	}
	if s.registrar != nil {
		s.registrar.Close()
	}
	if s.journal != nil {
		if err := s.journal.Close(); err != nil {
			slog.Error("close journal", "error", err)
		}
	}
}

func (s *Service) setupJournal() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		slog.Error("get config dir for journal", "error", err)
		return
	}

	journalPath := filepath.Join(configDir, "zeno", "journal")
	ttl := time.Duration(s.cfg.JournalTTLDays) * 24 * time.Hour
	j, err := journal.Open(journalPath, ttl)
	if err != nil {
		slog.Error("init journal", "error", err)
		return
	}
	s.journal = j
	slog.Info("journal initialized", "path", journalPath)
}

func (s *Service) setupHotkey() error {
	registrar, err := hotkey.New()
	if err != nil {
		return fmt.Errorf("init hotkey backend: %w", err)
	}
	s.registrar = registrar

	chord := s.cfg.Hotkey
	if err := registrar.Register(chord, func() { s.onShortcut(chord) }); err != nil {
		return fmt.Errorf("register global shortcut %q: %w", chord, err)
	}
	return nil
}

// onShortcut runs on the registrar's dispatch goroutine, once per press.
func (s *Service) onShortcut(chord string) {
	slog.Info("global shortcut triggered", "chord", chord)
	if err := s.activate(); err != nil {
		// Broadcast failing means the app handle is shutting down. Abort
		// this invocation loudly; the failure is not swallowed.
		slog.Error("broadcast toggle-overlay", "error", err)
	}
}

// ToggleOverlay broadcasts the toggle event through the same path as the
// global shortcut. Bound to the frontend and driven by the tray menu.
func (s *Service) ToggleOverlay() error {
	return s.activate()
}

// activate emits the toggle event to all windows, then records the
// activation. A failed emit aborts the activation before anything is
// recorded.
func (s *Service) activate() error {
	if err := s.bus.Emit(EventToggleOverlay); err != nil {
		return err
	}

	if s.journal != nil {
		if _, err := s.journal.Record(s.cfg.Hotkey); err != nil {
			slog.Warn("record activation", "error", err)
		}
	}
	return nil
}

// ActivationLabel renders an activation for menu display.
func ActivationLabel(act journal.Activation) string {
	return fmt.Sprintf("%s at %s", act.Chord, act.At.Format("15:04:05"))
}

// RecentActivations returns up to limit recent activations, newest first.
func (s *Service) RecentActivations(limit int) []journal.Activation {
	if s.journal == nil {
		return nil
	}
	acts, err := s.journal.Recent(limit)
	if err != nil {
		slog.Error("read recent activations", "error", err)
		return nil
	}
	return acts
}
