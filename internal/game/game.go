package game

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/sonicswirl/internal/gamedata"
	"github.com/samdwyer/sonicswirl/internal/telemetry"
	"github.com/samdwyer/sonicswirl/internal/ui"
)

// Game holds the interactive session: the terminal, the input and the simulation.
type Game struct {
	cfg       Config
	sessionID string
	screen    *ui.Screen
	hud       *ui.HUD
	keyboard  *ui.Keyboard
	sim       *Simulation
	watcher   *gamedata.Watcher
	message   string
}

// New creates a new game instance.
func New(ctx context.Context, cfg Config) (*Game, error) {
	palette, err := loadPalette(cfg)
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}

	sim, err := NewSimulation(ctx, cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		sessionID: telemetry.NewSessionID(),
		keyboard:  ui.NewKeyboard(),
		sim:       sim,
	}

	if files := cfg.watchedFiles(); len(files) > 0 {
		w, err := gamedata.NewWatcher(files...)
		if err != nil {
			log.Printf("Warning: not watching %v: %v", files, err)
		} else {
			g.watcher = w
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		g.Close()
		return nil, err
	}
	g.screen = screen
	g.hud = ui.NewHUD(screen, palette)
	return g, nil
}

// Run executes the main game loop until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()
	span.SetAttributes(telemetry.SessionAttributes(g.sessionID, false)...)
	span.SetAttributes(attribute.Int("tick_rate", g.cfg.TickRate))

	events := make(chan tcell.Event, 16)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return g.pump(ctx, events)
	})
	grp.Go(func() error {
		// Closing the screen unblocks the pump.
		defer g.screen.Close()
		return g.loop(ctx, span, events)
	})
	err := grp.Wait()

	span.SetAttributes(
		attribute.Int("ticks", g.sim.Tick()),
		attribute.Float64("elapsed_seconds", g.sim.Elapsed()),
	)
	return err
}

// pump forwards terminal events until the screen is closed.
func (g *Game) pump(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (g *Game) loop(ctx context.Context, span trace.Span, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	var changes <-chan string
	var watchErrs <-chan error
	if g.watcher != nil {
		changes = g.watcher.Events
		watchErrs = g.watcher.Errors
	}

	last := time.Now()
	g.render()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if g.keyboard.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case path, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			g.reload(ctx, path)

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			g.message = fmt.Sprintf("file watcher: %v", err)

		case now := <-ticker.C:
			dt := g.cfg.StepDT(now.Sub(last))
			last = now
			recordEvents(span, g.sim.Tick()+1, g.sim.Step(dt, g.keyboard.Input()))
			g.render()
		}
	}
}

// reload applies the tuning or theme file that path names.
func (g *Game) reload(ctx context.Context, path string) {
	switch filepath.Base(path) {
	case filepath.Base(g.cfg.TuningFile):
		g.reloadTuning(ctx)
	case filepath.Base(g.cfg.ThemeFile):
		g.reloadTheme(ctx)
	}
}

// reloadTuning applies the tuning file. A bad file keeps the current tuning.
func (g *Game) reloadTuning(ctx context.Context) {
	if g.cfg.TuningFile == "" {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "tuning.reload")
	defer span.End()
	span.SetAttributes(attribute.String("tuning.file", g.cfg.TuningFile))

	tuning, err := g.sim.ReloadTuning(g.cfg.TuningFile)
	if err != nil {
		span.RecordError(err)
		g.message = fmt.Sprintf("tuning reload failed: %v", err)
		return
	}
	span.SetAttributes(attribute.Float64("tuning.max_speed", tuning.MaxSpeed))
	g.message = "tuning reloaded from " + g.cfg.TuningFile
}

// reloadTheme applies the theme file to the HUD. A bad file keeps the current colours.
func (g *Game) reloadTheme(ctx context.Context) {
	if g.cfg.ThemeFile == "" {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "theme.reload")
	defer span.End()
	span.SetAttributes(attribute.String("theme.file", g.cfg.ThemeFile))

	palette, err := gamedata.LoadPaletteFile(g.cfg.ThemeFile)
	if err != nil {
		span.RecordError(err)
		g.message = fmt.Sprintf("theme reload failed: %v", err)
		return
	}
	g.hud.SetPalette(palette)
	g.message = "theme reloaded from " + g.cfg.ThemeFile
}

func loadPalette(cfg Config) (gamedata.Palette, error) {
	if cfg.ThemeFile == "" {
		return gamedata.LoadPalette()
	}
	return gamedata.LoadPaletteFile(cfg.ThemeFile)
}

func (g *Game) render() {
	var lines []string
	if g.message != "" {
		lines = append(lines, g.message)
	}
	for _, e := range g.sim.RecentEvents() {
		lines = append(lines, e.String())
	}
	g.hud.Render(g.sim.Tick(), g.sim.Level(), g.sim.Snapshot(), lines)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Error closing file watcher: %v", err)
		}
	}
	if g.screen != nil {
		g.screen.Close()
	}
}
