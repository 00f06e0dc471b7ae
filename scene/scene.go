// Package scene loads and validates trajectory scene descriptions:
// canvas size, environment forces, launch parameters, and output options
package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/trajectory/physics"
	"github.com/lixenwraith/trajectory/render"
	"github.com/lixenwraith/trajectory/vmath"
)

var (
	ErrCanvasSize = errors.New("scene: canvas dimensions must be positive")
	ErrNotFinite  = errors.New("scene: numbers must be finite")
	ErrGravity    = errors.New("scene: gravity must pull downward")
	ErrSpeed      = errors.New("scene: speed must not be negative")
	ErrVelocity   = errors.New("scene: velocity must be non-zero when speed is set")
	ErrMarker     = errors.New("scene: marker must be a hex color")
)

// Scene is a complete description of one trajectory run
type Scene struct {
	Canvas      CanvasSpec      `yaml:"canvas"`
	Environment EnvironmentSpec `yaml:"environment"`
	Projectile  ProjectileSpec  `yaml:"projectile"`
	Marker      string          `yaml:"marker"`
	Output      string          `yaml:"output"`
}

type CanvasSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type EnvironmentSpec struct {
	Gravity [3]float64 `yaml:"gravity"`
	Wind    [3]float64 `yaml:"wind"`
}

// ProjectileSpec sets the launch state. When Speed is positive the
// velocity is treated as a direction and rescaled to that magnitude,
// otherwise it is used as-is
type ProjectileSpec struct {
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
	Speed    float64    `yaml:"speed"`
}

// Default returns the stock cannon shot: a 900x550 canvas, light wind
// against the flight, and a launch angled steeply downrange
func Default() Scene {
	return Scene{
		Canvas: CanvasSpec{Width: 900, Height: 550},
		Environment: EnvironmentSpec{
			Gravity: [3]float64{0, -0.1, 0},
			Wind:    [3]float64{-0.01, 0, 0},
		},
		Projectile: ProjectileSpec{
			Position: [3]float64{0, 1, 0},
			Velocity: [3]float64{1, 1.8, 0},
			Speed:    11.25,
		},
		Marker: "#ff0000",
		Output: "trajectory.ppm",
	}
}

// Load decodes a YAML scene from r on top of the defaults, so partial
// documents only override the fields they name. An empty or comment-only
// document overrides nothing and yields the stock scene
func Load(r io.Reader) (Scene, error) {
	s := Default()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return Scene{}, fmt.Errorf("scene: decode: %w", err)
	}
	return s, nil
}

// LoadFile reads and decodes the scene file at path
func LoadFile(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// --- Validation ---

// finite reports whether every value is an ordinary number,
// neither NaN nor infinite
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate rejects scenes the pipeline cannot run to completion: every
// number must be finite and gravity must pull downward, so every shot
// lands. The sign gates alone cannot catch NaN, which compares false
// against everything
func (s Scene) Validate() error {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrCanvasSize, s.Canvas.Width, s.Canvas.Height)
	}
	if !finite(s.Environment.Gravity[:]...) {
		return fmt.Errorf("%w: gravity", ErrNotFinite)
	}
	if !finite(s.Environment.Wind[:]...) {
		return fmt.Errorf("%w: wind", ErrNotFinite)
	}
	if !finite(s.Projectile.Position[:]...) {
		return fmt.Errorf("%w: position", ErrNotFinite)
	}
	if !finite(s.Projectile.Velocity[:]...) {
		return fmt.Errorf("%w: velocity", ErrNotFinite)
	}
	if !finite(s.Projectile.Speed) {
		return fmt.Errorf("%w: speed", ErrNotFinite)
	}
	if s.Environment.Gravity[1] >= 0 {
		return fmt.Errorf("%w: gravity.y = %v", ErrGravity, s.Environment.Gravity[1])
	}
	if s.Projectile.Speed < 0 {
		return fmt.Errorf("%w: %v", ErrSpeed, s.Projectile.Speed)
	}
	if s.Projectile.Speed > 0 && s.Projectile.Velocity == [3]float64{} {
		return ErrVelocity
	}
	if s.Marker != "" {
		if _, err := colorful.Hex(s.Marker); err != nil {
			return fmt.Errorf("%w: %q", ErrMarker, s.Marker)
		}
	}
	return nil
}

// --- Conversion ---

func vec(a [3]float64) vmath.Vector {
	return vmath.Vector{X: a[0], Y: a[1], Z: a[2]}
}

// Env builds the physics environment from the scene forces
func (s Scene) Env() physics.Environment {
	return physics.Environment{
		Gravity: vec(s.Environment.Gravity),
		Wind:    vec(s.Environment.Wind),
	}
}

// Launch builds the initial projectile state. With a positive speed the
// configured velocity is normalized first, so direction and magnitude
// stay independent in scene files
func (s Scene) Launch() physics.Projectile {
	vel := vec(s.Projectile.Velocity)
	if s.Projectile.Speed > 0 {
		vel = vel.Normalize().Scale(s.Projectile.Speed)
	}
	return physics.Projectile{
		Pos: vmath.Point{
			X: s.Projectile.Position[0],
			Y: s.Projectile.Position[1],
			Z: s.Projectile.Position[2],
		},
		Vel: vel,
	}
}

// MarkerColor parses the marker hex string, falling back to red when
// the scene leaves it empty
func (s Scene) MarkerColor() render.Color {
	if s.Marker == "" {
		return render.Color{R: 1}
	}
	col, err := colorful.Hex(s.Marker)
	if err != nil {
		return render.Color{R: 1}
	}
	return render.Color{R: col.R, G: col.G, B: col.B}
}

// NewCanvas allocates the canvas sized for this scene
func (s Scene) NewCanvas() *render.Canvas {
	return render.NewCanvas(s.Canvas.Width, s.Canvas.Height)
}
