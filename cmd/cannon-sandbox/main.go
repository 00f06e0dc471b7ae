// FILE: cmd/cannon-sandbox/main.go
// @lixen: #focus{sandbox[cannon,preview]}
// @lixen: #interact{state[sim,trail],trigger[chime,input]}
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/trajectory/physics"
	"github.com/lixenwraith/trajectory/scene"
	"github.com/lixenwraith/trajectory/vmath"
)

var (
	sceneFlag = flag.String("scene", "", "Path to a YAML scene file (built-in cannon shot when empty)")
	tpsFlag   = flag.Int("tps", 60, "Simulation ticks per second")
	muteFlag  = flag.Bool("mute", false, "Disable the landing chime")
	debugFlag = flag.Bool("debug", false, "Write debug logs under logs/")
)

type mark struct {
	x, y int
}

type Game struct {
	screen        tcell.Screen
	width, height int

	sc     scene.Scene
	sim    *physics.Simulator
	flying bool
	landed bool
	ticks  int
	impact float64

	// Trail of screen cells the shot has crossed
	marks       []mark
	markerStyle tcell.Style
	headStyle   tcell.Style
	hudStyle    tcell.Style

	chime  *chime
	logger *zap.Logger
}

func NewGame(sc scene.Scene, logger *zap.Logger, mute bool) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen: screen,
		sc:     sc,
		marks:  make([]mark, 0, 256),
		logger: logger,
	}
	g.width, g.height = screen.Size()

	r, gr, b := sc.MarkerColor().RGB8()
	g.markerStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(gr), int32(b)))
	g.headStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	g.hudStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

	g.chime = newChime(mute, logger)
	return g, nil
}

// --- Simulation ---

func (g *Game) fire() {
	g.sim = physics.NewSimulator(g.sc.Env(), g.sc.Launch())
	g.flying = true
	g.landed = false
	g.ticks = 0
	g.marks = g.marks[:0]
	g.logger.Debug("Shot fired", zap.Int("tps", *tpsFlag))
}

func (g *Game) reset() {
	g.sim = nil
	g.flying = false
	g.landed = false
	g.ticks = 0
	g.marks = g.marks[:0]
}

// project maps world coordinates onto the terminal: the scene canvas
// spans the full screen, with altitude growing upward
func (g *Game) project(p vmath.Point) (int, int) {
	sx := int(p.X * float64(g.width) / float64(g.sc.Canvas.Width))
	sy := g.height - 1 - int(p.Y*float64(g.height)/float64(g.sc.Canvas.Height))
	return sx, sy
}

func (g *Game) step() {
	if !g.flying {
		return
	}

	p := g.sim.Tick()
	g.ticks++

	sx, sy := g.project(p.Pos)
	if sx >= 0 && sx < g.width && sy >= 0 && sy < g.height {
		g.marks = append(g.marks, mark{x: sx, y: sy})
	}

	if p.Pos.Y <= 0 {
		g.flying = false
		g.landed = true
		g.impact = p.Pos.X
		g.chime.landing()
		g.logger.Info("Projectile landed",
			zap.Int("ticks", g.ticks),
			zap.Float64("impact_x", g.impact),
		)
	}
}

// --- Rendering ---

func (g *Game) draw() {
	g.screen.Clear()

	for _, m := range g.marks {
		g.screen.SetContent(m.x, m.y, '·', nil, g.markerStyle)
	}

	if g.flying {
		p := g.sim.Projectile()
		sx, sy := g.project(p.Pos)
		if sx >= 0 && sx < g.width && sy >= 0 && sy < g.height {
			g.screen.SetContent(sx, sy, '@', nil, g.headStyle)
		}
	}

	g.drawString(1, g.height-1, g.status(), g.hudStyle)
	g.screen.Show()
}

func (g *Game) status() string {
	switch {
	case g.flying:
		p := g.sim.Projectile()
		return fmt.Sprintf("Tick %d | Pos (%.1f, %.1f) | Vel (%.1f, %.1f) | Space: Fire | r: Reset | q: Quit",
			g.ticks, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y)
	case g.landed:
		return fmt.Sprintf("Landed at x=%.1f after %d ticks | Space: Fire | r: Reset | q: Quit",
			g.impact, g.ticks)
	default:
		return "Ready | Space: Fire | q: Quit"
	}
}

func (g *Game) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		if x+i < g.width {
			g.screen.SetContent(x+i, y, r, nil, style)
		}
	}
}

// --- Input ---

func (g *Game) handleResize() {
	g.width, g.height = g.screen.Size()
	// Marks were projected for the old dimensions
	g.marks = g.marks[:0]
	g.screen.Sync()
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				g.fire()
			case 'r':
				g.reset()
			}
		}

	case *tcell.EventResize:
		g.handleResize()
	}

	return true
}

// --- Main Loop ---

func (g *Game) run(tps int) {
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.step()
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.chime.close()
	g.screen.Fini()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll("logs", 0755); err != nil {
		return nil, err
	}
	logPath := filepath.Join("logs", "cannon-sandbox.log")
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
		DisableCaller:    true,
	}
	return config.Build()
}

func main() {
	flag.Parse()

	logger, err := newLogger(*debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sc := scene.Default()
	if *sceneFlag != "" {
		sc, err = scene.LoadFile(*sceneFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
			os.Exit(1)
		}
	}
	if err := sc.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid scene: %v\n", err)
		os.Exit(1)
	}

	game, err := NewGame(sc, logger, *muteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: cleanup() below runs first and restores the
	// terminal, so the trace stays readable
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nCANNON-SANDBOX CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer game.cleanup()

	game.run(*tpsFlag)
}
