package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/mahjong/autoplay"
	"github.com/milk9111/mahjong/board"
	"github.com/milk9111/mahjong/common"
	"github.com/milk9111/mahjong/config"
	"github.com/milk9111/mahjong/game"
	"github.com/milk9111/mahjong/render"
	"github.com/milk9111/mahjong/sched"
	"gopkg.in/yaml.v3"
)

// fade is a matched tile still drawn while it disappears.
type fade struct {
	tile   board.TileState
	start  int
	frames int
}

// frameTiming holds the configured durations as frame counts.
type frameTiming struct {
	tick int
	hint int
	fade int
}

func newFrameTiming(t config.TimingConfig) frameTiming {
	return frameTiming{
		tick: t.TPS,
		hint: sched.Frames(t.Hint(), t.TPS),
		fade: sched.Frames(t.Fade(), t.TPS),
	}
}

// Game is the ebiten front end. Board state lives in session; everything
// here is presentation.
type Game struct {
	frames int
	debug  bool

	cfgPath string
	cfg     config.Config
	watcher *config.Watcher

	session *game.Game
	policy  *autoplay.Policy
	sched   *sched.Scheduler

	input *Input
	hud   *HUD
	tiles *render.TileRenderer
	clip  *Clipboard

	timing   frameTiming
	snap     board.Snapshot
	hint     [2]int
	hintTask sched.Handle
	tickTask sched.Handle
	fading   map[int]fade
	status   string
}

func NewGame(cfgPath string, cfg config.Config, debug, watch bool) (*Game, error) {
	session, err := game.New(game.Config{
		Log:  log.Default(),
		Seed: cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:   debug,
		cfgPath: cfgPath,
		session: session,
		sched:   sched.New(),
		input:   NewInput(),
		clip:    NewClipboard(),
		fading:  make(map[int]fade),
	}
	g.hud = NewHUD(hudActions{
		NewGame:  g.newGame,
		Hint:     g.showHint,
		Shuffle:  g.shuffle,
		Autoplay: g.autoplayStep,
		Copy:     g.copySnapshot,
	}, cfg.Colors.HUD.RGBA)
	g.apply(cfg)

	if watch && cfgPath != "" {
		w, err := config.NewWatcher(filepath.Dir(cfgPath))
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", cfgPath, err)
		}
		g.watcher = w
	}

	g.newGame()
	return g, nil
}

// apply installs cfg. The autoplay policy is only replaced when the new
// script compiles.
func (g *Game) apply(cfg config.Config) {
	g.cfg = cfg
	g.applyTiming(cfg.Timing)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	geo := render.NewGeometry(cfg.Tile)
	geo.OriginY = hudHeight
	g.tiles = render.NewTileRenderer(geo, cfg.Colors)

	policy, err := autoplay.LoadPolicy(cfg.AutoplayScript)
	if err != nil {
		log.Printf("autoplay: keeping previous policy: %v", err)
	} else {
		g.policy = policy
	}
	g.hud.SetAutoplay(g.policy != nil)
}

// applyTiming runs the engine at t.TPS and moves a running clock to the new
// rate so it still ticks once per second.
func (g *Game) applyTiming(t config.TimingConfig) {
	ebiten.SetTPS(t.TPS)
	old := g.timing
	g.timing = newFrameTiming(t)
	if g.tickTask != 0 && old.tick != g.timing.tick {
		g.sched.Cancel(g.tickTask)
		g.tickTask = g.sched.Every(g.timing.tick, g.session.Tick)
	}
}

func (g *Game) reload(path string) {
	if filepath.Clean(path) != filepath.Clean(g.cfgPath) && filepath.Ext(path) != ".tengo" {
		return
	}
	cfg, err := config.Load(g.cfgPath)
	if err != nil {
		log.Printf("config: reload failed, keeping current settings: %v", err)
		return
	}
	g.apply(cfg)
	log.Printf("config: reloaded %s", path)
}

func (g *Game) newGame() {
	g.snap = g.session.NewGame()
	g.sched.CancelAll()
	g.hint = [2]int{}
	g.hintTask = 0
	clear(g.fading)
	g.tickTask = g.sched.Every(g.timing.tick, g.session.Tick)
	g.setStatus(g.session.Status(game.EventNewGame))
}

func (g *Game) selectTile(id int) {
	r := g.session.SelectTile(id)
	if !r.Changed() {
		return
	}
	if r.Matched {
		g.startFade(r.RemovedIDs)
		g.clearHint()
	}
	g.snap = g.session.Snapshot()
	if ev, ok := r.Event(); ok {
		g.setStatus(g.session.Status(ev))
	}
	if r.Won {
		g.sched.Cancel(g.tickTask)
		g.tickTask = 0
	}
}

// startFade keeps the matched tiles on screen until the fade task drops them.
func (g *Game) startFade(ids []int) {
	frames := g.timing.fade
	if frames == 0 {
		return
	}
	for _, ts := range g.snap {
		if ts.ID != ids[0] && ts.ID != ids[1] {
			continue
		}
		ts.Removed = false
		g.fading[ts.ID] = fade{tile: ts, start: g.frames, frames: frames}
	}
	g.sched.After(frames, func() {
		for _, id := range ids {
			delete(g.fading, id)
		}
	})
}

func (g *Game) showHint() {
	g.setStatus(g.session.Status(game.EventHint))
	pair, ok := g.session.Hint()
	if !ok {
		return
	}
	g.clearHint()
	g.hint = pair.IDs()
	g.hintTask = g.sched.After(g.timing.hint, func() {
		g.hint = [2]int{}
		g.hintTask = 0
	})
}

func (g *Game) clearHint() {
	if g.hintTask != 0 {
		g.sched.Cancel(g.hintTask)
		g.hintTask = 0
	}
	g.hint = [2]int{}
}

func (g *Game) shuffle() {
	g.snap = g.session.Reshuffle()
	g.clearHint()
	g.setStatus(g.session.Status(game.EventShuffled))
	if ev, ok := g.session.TerminalEvent(); ok {
		g.setStatus(g.session.Status(ev))
	}
}

func (g *Game) autoplayStep() {
	if g.policy == nil {
		return
	}
	pairs := g.session.AvailablePairs()
	if len(pairs) == 0 {
		g.setStatus(g.session.Status(game.EventNoHint))
		return
	}
	idx, err := g.policy.Choose(pairs, autoplay.State{
		Live:  g.session.PairsRemaining() * 2,
		Moves: g.session.MovesMade(),
		Free:  g.session.FreeCount(),
	})
	if err != nil {
		log.Printf("autoplay: %v", err)
		g.setStatus("Autoplay script failed.")
		return
	}
	g.session.ClearSelection()
	g.selectTile(pairs[idx][0].ID)
	g.selectTile(pairs[idx][1].ID)
}

func (g *Game) copySnapshot() {
	data, err := yaml.Marshal(g.session.Snapshot())
	if err != nil {
		log.Printf("clipboard: marshal snapshot: %v", err)
		return
	}
	if !g.clip.CopyText(string(data)) {
		g.setStatus("Clipboard is not available.")
		return
	}
	g.setStatus("Board copied to the clipboard.")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.hud.SetStatus(s)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	g.input.Update()
	g.hud.UI.Update()

	switch {
	case g.input.NewGame:
		g.newGame()
	case g.input.Hint:
		g.showHint()
	case g.input.Shuffle:
		g.shuffle()
	case g.input.Autoplay:
		g.autoplayStep()
	case g.input.Copy:
		g.copySnapshot()
	}

	if g.input.Click && g.input.ClickY > hudHeight {
		if id, ok := g.tiles.Geometry.HitTest(g.snap, float64(g.input.ClickX), float64(g.input.ClickY)); ok {
			g.selectTile(id)
		}
	}

	g.sched.Update()
	g.hud.SetHeader(fmt.Sprintf("Pairs left: %d   Moves: %d   Time: %s",
		g.session.PairsRemaining(), g.session.MovesMade(), game.FormatElapsed(g.session.ElapsedSeconds())))
	return nil
}

// views lists what to draw this frame, fading tiles included, in draw order.
func (g *Game) views() []render.TileView {
	held, _ := g.session.Selected()
	snap := g.snap
	if len(g.fading) > 0 {
		snap = append(board.Snapshot(nil), g.snap...)
		for i, ts := range snap {
			if f, ok := g.fading[ts.ID]; ok {
				snap[i] = f.tile
			}
		}
	}

	order := render.DrawOrder(snap)
	views := make([]render.TileView, 0, len(order))
	for _, ts := range order {
		v := render.TileView{Tile: ts, State: render.StateBlocked}
		switch {
		case ts.ID == held:
			v.State = render.StateSelected
		case ts.ID == g.hint[0] || ts.ID == g.hint[1]:
			v.State = render.StateHint
		case g.session.IsFree(ts.ID):
			v.State = render.StateFree
		}
		if f, ok := g.fading[ts.ID]; ok {
			v.State = render.StateFree
			v.Fade = common.Lerp(1, 0.01, common.Progress(g.frames-f.start, f.frames))
		}
		views = append(views, v)
	}
	return views
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Colors.Background.RGBA)
	g.tiles.Draw(screen, g.views())
	g.hud.UI.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  session: %s  pairs: %d",
			ebiten.ActualFPS(), g.session.SessionID(), len(g.session.AvailablePairs())), 8, g.cfg.Window.Height-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops the config watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
