package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/samdwyer/sonicswirl/internal/entity"
)

// ErrUnknownScript is returned by LookupScript for names that are not registered.
var ErrUnknownScript = errors.New("unknown script")

// Script produces the input held on a given tick of a headless run.
type Script func(tick int) entity.Input

const hopPeriod = 60

var scripts = map[string]Script{
	"idle": func(int) entity.Input { return entity.Input{} },
	"run-right": func(int) entity.Input {
		return entity.Input{Right: true}
	},
	"run-left": func(int) entity.Input {
		return entity.Input{Left: true}
	},
	"hop-right": func(tick int) entity.Input {
		phase := tick % hopPeriod
		return entity.Input{
			Right:           true,
			JumpJustPressed: phase == 0,
			JumpHeld:        phase < hopPeriod/3,
		}
	},
	"zigzag": func(tick int) entity.Input {
		if (tick/120)%2 == 0 {
			return entity.Input{Right: true}
		}
		return entity.Input{Left: true}
	},
	// Fly up and right over the level, then drop back into physics.
	"debug-tour": func(tick int) entity.Input {
		switch {
		case tick == 0:
			return entity.Input{DebugToggle: true}
		case tick < 60:
			return entity.Input{Up: true}
		case tick < 240:
			return entity.Input{Right: true, DebugRotate: tick%60 == 0}
		case tick == 240:
			return entity.Input{DebugToggle: true}
		default:
			return entity.Input{}
		}
	},
}

// ScriptNames returns the registered script names in sorted order.
func ScriptNames() []string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupScript returns the script registered under name.
func LookupScript(name string) (Script, error) {
	if s, ok := scripts[name]; ok {
		return s, nil
	}
	if suggestions := suggestScripts(name); len(suggestions) > 0 {
		return nil, fmt.Errorf("%q (did you mean %s?): %w", name, strings.Join(suggestions, ", "), ErrUnknownScript)
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownScript)
}

func suggestScripts(name string) []string {
	matches := fuzzy.Find(name, ScriptNames())
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
