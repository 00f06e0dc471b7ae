package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"go.uber.org/zap"

	"github.com/lixenwraith/trajectory/physics"
	"github.com/lixenwraith/trajectory/render"
	"github.com/lixenwraith/trajectory/scene"
)

// flightResult captures one simulated shot after it lands
type flightResult struct {
	Ticks     int
	ImpactX   float64
	Apex      float64
	Altitudes []float64
}

// plotFlight advances the simulator until the projectile falls to or
// below ground level, marking the canvas after every tick. The marker
// x truncates the position, and y is flipped so altitude grows upward
// in the image. Marks past the canvas edge are dropped silently
func plotFlight(sim *physics.Simulator, cv *render.Canvas, marker render.Color) flightResult {
	start := sim.Projectile()
	res := flightResult{
		Apex:      start.Pos.Y,
		Altitudes: []float64{start.Pos.Y},
	}

	for {
		p := sim.Tick()
		res.Ticks++
		res.Altitudes = append(res.Altitudes, p.Pos.Y)
		if p.Pos.Y > res.Apex {
			res.Apex = p.Pos.Y
		}

		x := int(p.Pos.X)
		y := cv.Height() - int(p.Pos.Y)
		cv.WritePixel(x, y, marker)

		if p.Pos.Y <= 0 {
			res.ImpactX = p.Pos.X
			return res
		}
	}
}

func run(logger *zap.Logger, scenePath, outOverride string, chart bool) error {
	sc := scene.Default()
	if scenePath != "" {
		var err error
		sc, err = scene.LoadFile(scenePath)
		if err != nil {
			return err
		}
		logger.Debug("Scene loaded", zap.String("path", scenePath))
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	out := sc.Output
	if outOverride != "" {
		out = outOverride
	}

	launch := sc.Launch()
	sim := physics.NewSimulator(sc.Env(), launch)
	cv := sc.NewCanvas()

	logger.Debug("Launching",
		zap.Float64("pos_y", launch.Pos.Y),
		zap.Float64("vel_x", launch.Vel.X),
		zap.Float64("vel_y", launch.Vel.Y),
	)

	res := plotFlight(sim, cv, sc.MarkerColor())
	logger.Info("Flight complete",
		zap.Int("ticks", res.Ticks),
		zap.Float64("impact_x", res.ImpactX),
		zap.Float64("apex", res.Apex),
	)

	img := cv.ToPPM()
	if err := img.WriteFile(out); err != nil {
		return err
	}
	logger.Info("Image written",
		zap.String("path", out),
		zap.Int("bytes", len(img.Bytes())),
	)

	if chart {
		fmt.Fprintln(os.Stderr, asciigraph.Plot(res.Altitudes,
			asciigraph.Height(12),
			asciigraph.Width(72),
			asciigraph.Caption("altitude per tick"),
		))
	}
	return nil
}
