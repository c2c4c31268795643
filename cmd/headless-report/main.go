// Command headless-report runs a scripted session without a terminal UI and
// prints a summary of the player's movement and events.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/sonicswirl/internal/game"
	"github.com/samdwyer/sonicswirl/internal/telemetry"
)

const defaultWidth = 80

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("headless-report: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var (
		ticks   int
		dt      float64
		script  string
		list    bool
		copyOut bool
		traced  bool
	)

	fs := flag.NewFlagSet("headless-report", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.IntVar(&ticks, "ticks", 600, "ticks to simulate")
	fs.Float64Var(&dt, "dt", 0, "seconds per tick (default 1/tick rate)")
	fs.StringVar(&script, "script", "idle", "input script name")
	fs.BoolVar(&list, "list", false, "list input scripts and exit")
	fs.BoolVar(&copyOut, "copy", false, "copy the report to the clipboard")
	fs.BoolVar(&traced, "trace", false, "export spans using the OTEL_* environment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if list {
		fmt.Fprintln(stdout, strings.Join(game.ScriptNames(), "\n"))
		return nil
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return err
	}
	if dt < 0 {
		return fmt.Errorf("-dt must be >= 0, got %v", dt)
	}
	if dt > 0 {
		cfg.FixedDT = dt
	}

	if traced {
		if err := godotenv.Load(); err != nil {
			log.Printf("Note: .env file not loaded: %v", err)
		}
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	report, err := game.RunHeadless(ctx, cfg, script, ticks)
	if err != nil {
		return err
	}

	out := report.Format(terminalWidth(stdout))
	if _, err := io.WriteString(stdout, out); err != nil {
		return err
	}
	if copyOut {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("copy report: %w", err)
		}
	}
	return nil
}

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
