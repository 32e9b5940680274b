// Package autoplay plays solitaire moves chosen by a tengo script.
//
// A policy script defines choose(pairs, state) and returns the index of the
// pair to take. Each pair is a map with tiles a and b, every tile holding id,
// x, y, z and face. state holds live, moves and free counts.
package autoplay

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/mahjong/board"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// DefaultPolicy is the bundled script used when none is configured.
const DefaultPolicy = "first"

const dispatchScript = `
__choice := choose(__pairs, __state)
`

// State is what a policy sees beyond the pairs.
type State struct {
	Live  int
	Moves int
	Free  int
}

type Policy struct {
	name     string
	compiled *tengo.Compiled
}

// LoadPolicy resolves name as a file on disk first, then as a bundled script
// such as "first" or "upper". An empty name loads DefaultPolicy.
func LoadPolicy(name string) (*Policy, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultPolicy
	}
	src, err := loadScript(name)
	if err != nil {
		return nil, fmt.Errorf("autoplay: load %s: %w", name, err)
	}
	return NewPolicy(name, src)
}

func loadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := strings.TrimSuffix(filepath.Base(filepath.ToSlash(name)), ".tengo")
	return ScriptsFS.ReadFile("scripts/" + clean + ".tengo")
}

// NewPolicy compiles src. The script must define choose.
func NewPolicy(name string, src []byte) (*Policy, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = script.Add("__pairs", []any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autoplay: compile %s: %w", name, err)
	}
	return &Policy{name: name, compiled: compiled}, nil
}

func (p *Policy) Name() string {
	return p.name
}

// Choose runs the script over pairs and returns the chosen index. A script
// that faults at run time, such as an integer division by zero, is reported
// as an error.
func (p *Policy) Choose(pairs []board.Pair, st State) (idx int, err error) {
	defer func() {
		if r := recover(); r != nil {
			idx, err = 0, fmt.Errorf("autoplay: run %s: %v", p.name, r)
		}
	}()
	if len(pairs) == 0 {
		return 0, fmt.Errorf("autoplay: %s: no pairs to choose from", p.name)
	}
	if err := p.compiled.Set("__pairs", pairsToAny(pairs)); err != nil {
		return 0, err
	}
	state := map[string]any{
		"live":  st.Live,
		"moves": st.Moves,
		"free":  st.Free,
	}
	if err := p.compiled.Set("__state", state); err != nil {
		return 0, err
	}
	if err := p.compiled.Run(); err != nil {
		return 0, fmt.Errorf("autoplay: run %s: %w", p.name, err)
	}

	v := p.compiled.Get("__choice")
	if _, ok := v.Object().(*tengo.Int); !ok {
		return 0, fmt.Errorf("autoplay: %s: choose returned %s, want int", p.name, v.Object().TypeName())
	}
	idx = v.Int()
	if idx < 0 || idx >= len(pairs) {
		return 0, fmt.Errorf("autoplay: %s: choice %d out of range [0,%d)", p.name, idx, len(pairs))
	}
	return idx, nil
}

func pairsToAny(pairs []board.Pair) []any {
	out := make([]any, 0, len(pairs))
	for _, pr := range pairs {
		out = append(out, map[string]any{
			"a": tileToAny(pr[0]),
			"b": tileToAny(pr[1]),
		})
	}
	return out
}

func tileToAny(t *board.Tile) map[string]any {
	return map[string]any{
		"id":   t.ID,
		"x":    t.Position.X,
		"y":    t.Position.Y,
		"z":    t.Position.Z,
		"face": string(t.Face),
	}
}
