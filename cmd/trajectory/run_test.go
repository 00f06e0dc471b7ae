package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/trajectory/physics"
	"github.com/lixenwraith/trajectory/render"
	"github.com/lixenwraith/trajectory/scene"
	"github.com/lixenwraith/trajectory/vmath"
)

func countMarked(cv *render.Canvas) int {
	n := 0
	for col := range cv.Pixels() {
		if col != render.Black {
			n++
		}
	}
	return n
}

func TestPlotFlightTerminates(t *testing.T) {
	sc := scene.Default()
	sim := physics.NewSimulator(sc.Env(), sc.Launch())
	cv := sc.NewCanvas()

	res := plotFlight(sim, cv, sc.MarkerColor())

	assert.Greater(t, res.Ticks, 0)
	assert.Greater(t, res.ImpactX, 0.0)
	assert.Greater(t, res.Apex, 1.0)
	assert.Len(t, res.Altitudes, res.Ticks+1)
	assert.LessOrEqual(t, res.Altitudes[len(res.Altitudes)-1], 0.0)
	assert.Greater(t, countMarked(cv), 0)
}

func TestPlotFlightProjection(t *testing.T) {
	// A dropped projectile: first tick drifts nowhere, second falls
	// through the ground, so exactly one mark lands on the canvas
	env := physics.Environment{Gravity: vmath.Vector{Y: -2}}
	proj := physics.Projectile{Pos: vmath.Point{X: 2, Y: 1.5}}
	sim := physics.NewSimulator(env, proj)

	cv := render.NewCanvas(4, 4)
	marker := render.Color{R: 1}
	res := plotFlight(sim, cv, marker)

	assert.Equal(t, 2, res.Ticks)
	assert.Equal(t, 2.0, res.ImpactX)
	assert.Equal(t, 1.5, res.Apex)

	got, err := cv.PixelAt(2, 3)
	require.NoError(t, err)
	assert.Equal(t, marker, got)
	assert.Equal(t, 1, countMarked(cv))
}

func TestPlotFlightDropsOffCanvasMarks(t *testing.T) {
	sc := scene.Default()
	sim := physics.NewSimulator(sc.Env(), sc.Launch())

	// Far too small for the stock shot: most marks fall outside
	cv := render.NewCanvas(2, 2)
	res := plotFlight(sim, cv, sc.MarkerColor())

	assert.Greater(t, res.Ticks, 0)
}

func TestRunWritesImage(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	doc := "canvas:\n  width: 40\n  height: 30\nprojectile:\n  speed: 3\n"
	require.NoError(t, os.WriteFile(scenePath, []byte(doc), 0644))

	outPath := filepath.Join(dir, "flight.ppm")
	require.NoError(t, run(zap.NewNop(), scenePath, outPath, false))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P3\n40 30\n255\n"))
}

func TestRunStockScene(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "stock.ppm")
	require.NoError(t, run(zap.NewNop(), "", outPath, false))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P3\n900 550\n255\n"))
}

func TestRunRejectsInvalidScene(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "UpwardGravity",
			doc:     "environment:\n  gravity: [0, 0.5, 0]\n",
			wantErr: scene.ErrGravity,
		},
		{
			// NaN gravity would keep the flight loop from ever landing
			name:    "NaNGravity",
			doc:     "environment:\n  gravity: [0, .nan, 0]\n",
			wantErr: scene.ErrNotFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenePath := filepath.Join(t.TempDir(), "scene.yaml")
			require.NoError(t, os.WriteFile(scenePath, []byte(tt.doc), 0644))

			err := run(zap.NewNop(), scenePath, "", false)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunMissingSceneFile(t *testing.T) {
	err := run(zap.NewNop(), filepath.Join(t.TempDir(), "absent.yaml"), "", false)
	require.Error(t, err)
}
