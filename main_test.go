package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/integrator"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/renderer"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/scene"
)

func TestEmptySceneRendersExactBackground(t *testing.T) {
	// With no geometry, every pixel is the sky gradient of its camera
	// ray. Replaying each pixel's random stream reproduces that ray,
	// so the rendered colors can be checked for exact equality.
	const width, height = 16, 9
	const seed = 42

	cameraConfig := scene.DefaultCameraConfig()
	cameraConfig.AspectRatio = float64(width) / float64(height)
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	sc := scene.NewEmptyScene(cameraConfig)
	config := renderer.Config{
		Width: width, Height: height,
		SamplesPerPixel: 1, MaxDepth: 10, Seed: seed, Workers: 4,
	}
	rt, err := renderer.NewRaytracer(sc, camera, config)
	if err != nil {
		t.Fatalf("NewRaytracer: %v", err)
	}

	buf := rt.RenderColors()
	renderSeed := core.NewSeed(core.RNGIdentifierRender, 0, seed)

	for row := 0; row < height; row++ {
		for i := 0; i < width; i++ {
			pixelIndex := uint32(row*width + i)
			rng := core.NewRandomGenerator(renderSeed, core.NewCounter(pixelIndex, 0, 0, 0))
			sampler := core.NewStreamSampler(rng)

			jitter := sampler.Get2D()
			s := (float64(i) + jitter.X) / float64(width)
			tv := (float64(height-1-row) + jitter.Y) / float64(height)
			ray := camera.GetRay(s, tv, sampler)

			expected := integrator.BackgroundGradient(ray, sc)
			if got := buf[row*width+i]; got != expected {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", i, row, expected, got)
			}
		}
	}
}

func renderCoverPPM(t *testing.T, workers, rowsPerTask int) []byte {
	t.Helper()

	const width, height = 24, 14
	config := renderer.Config{
		Width: width, Height: height,
		SamplesPerPixel: 2, MaxDepth: 8, Seed: 42,
		Workers: workers, RowsPerTask: rowsPerTask,
	}

	sc, err := scene.NewCoverScene(config.Seed)
	if err != nil {
		t.Fatalf("NewCoverScene: %v", err)
	}

	cameraConfig := sc.CameraConfig
	cameraConfig.AspectRatio = float64(width) / float64(height)
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	rt, err := renderer.NewRaytracer(sc, camera, config)
	if err != nil {
		t.Fatalf("NewRaytracer: %v", err)
	}

	var buf bytes.Buffer
	if err := renderer.WritePPM(&buf, rt.Render()); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	return buf.Bytes()
}

func TestCoverSceneRenderIsByteIdentical(t *testing.T) {
	reference := renderCoverPPM(t, 1, 1)

	if repeat := renderCoverPPM(t, 1, 1); !bytes.Equal(reference, repeat) {
		t.Error("Repeated renders produced different bytes")
	}

	for _, tt := range []struct{ workers, rowsPerTask int }{
		{4, 1}, {4, 3}, {0, 7},
	} {
		got := renderCoverPPM(t, tt.workers, tt.rowsPerTask)
		if !bytes.Equal(reference, got) {
			t.Errorf("Workers=%d RowsPerTask=%d produced different bytes", tt.workers, tt.rowsPerTask)
		}
	}
}

func TestCoverSceneRenderHasValidPixels(t *testing.T) {
	ppm := string(renderCoverPPM(t, 0, 2))

	lines := strings.Split(strings.TrimSuffix(ppm, "\n"), "\n")
	if len(lines) != 3+24*14 {
		t.Fatalf("Expected %d lines, got %d", 3+24*14, len(lines))
	}
	if lines[0] != "P3" || lines[1] != "24 14" || lines[2] != "255" {
		t.Fatalf("Unexpected header: %q", lines[:3])
	}

	// A cover render is never all one color
	distinct := make(map[string]bool)
	for _, line := range lines[3:] {
		distinct[line] = true
	}
	if len(distinct) < 2 {
		t.Error("Expected more than one distinct pixel value")
	}
}

func TestOpenOutput(t *testing.T) {
	write, w, closer, err := openOutput("-")
	if err != nil {
		t.Fatalf("openOutput(-): %v", err)
	}
	if w != os.Stdout || closer != nil || write == nil {
		t.Error("Expected stdout writer with no closer")
	}

	dir := t.TempDir()
	for _, name := range []string{"out.ppm", "out.PNG"} {
		path := filepath.Join(dir, name)
		write, w, closer, err := openOutput(path)
		if err != nil {
			t.Fatalf("openOutput(%s): %v", name, err)
		}
		if write == nil || w == nil || closer == nil {
			t.Errorf("openOutput(%s): incomplete result", name)
		}
		closer.Close()
	}

	if _, _, _, err := openOutput(filepath.Join(dir, "out.gif")); err == nil {
		t.Error("Expected an error for an unsupported extension")
	}
}

func TestMaxSeedBuildsScene(t *testing.T) {
	if _, err := scene.NewCoverScene(math.MaxUint16); err != nil {
		t.Errorf("NewCoverScene(max seed): %v", err)
	}
}
