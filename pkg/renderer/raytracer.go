package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Shihab-Shahriar/raytracing-go/pkg/core"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/integrator"
)

// Config contains rendering configuration. Width, height, samples and
// depth bound the total work; Workers and RowsPerTask only choose the
// parallel granularity and have no effect on output pixel values.
type Config struct {
	Width           int    // Image width in pixels
	Height          int    // Image height in pixels
	SamplesPerPixel int    // Number of rays per pixel
	MaxDepth        int    // Maximum ray bounce depth
	Seed            uint16 // User seed for all random streams
	Workers         int    // Worker goroutines; 0 = NumCPU
	RowsPerTask     int    // Scanlines per work unit; 0 = 1
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           1200,
		Height:          675,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Validate checks the configuration before any render unit starts
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel %d must be positive", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth %d must be positive", c.MaxDepth)
	}
	if c.Workers < 0 || c.RowsPerTask < 0 {
		return fmt.Errorf("workers and rows per task must not be negative")
	}
	return nil
}

// Raytracer renders a scene into a frame buffer. Every (pixel, sample)
// pair draws from its own counter-based random stream keyed by the
// render seed, so the result is byte-identical no matter how the work
// is split across goroutines.
type Raytracer struct {
	scene  integrator.Scene
	camera *Camera
	tracer *integrator.PathTracer
	config Config
	seed   core.Seed
}

// NewRaytracer creates a raytracer for the given scene and camera
func NewRaytracer(scene integrator.Scene, camera *Camera, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Raytracer{
		scene:  scene,
		camera: camera,
		tracer: integrator.NewPathTracer(config.MaxDepth),
		config: config,
		seed:   core.NewSeed(core.RNGIdentifierRender, 0, config.Seed),
	}, nil
}

// pixelSampler returns the random stream owned by one (pixel, sample)
// unit of work. The stream identity depends only on the pixel and
// sample indices, never on scheduling.
func (rt *Raytracer) pixelSampler(pixelIndex, sampleIndex uint32) core.Sampler {
	rng := core.NewRandomGenerator(rt.seed, core.NewCounter(pixelIndex, sampleIndex, 0, 0))
	return core.NewStreamSampler(rng)
}

// samplePixel averages SamplesPerPixel traced samples for the pixel at
// column i, image row `row` (row 0 is the top scanline)
func (rt *Raytracer) samplePixel(i, row int) core.Vec3 {
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)

	// Image rows count down from the top; the camera's t axis points up
	j := rt.config.Height - 1 - row
	pixelIndex := uint32(row*rt.config.Width + i)

	colorAccum := core.NewVec3(0, 0, 0)
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		sampler := rt.pixelSampler(pixelIndex, uint32(sample))

		// Jitter within the pixel for anti-aliasing
		jitter := sampler.Get2D()
		s := (float64(i) + jitter.X) / width
		t := (float64(j) + jitter.Y) / height

		ray := rt.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.tracer.RayColor(ray, rt.scene, sampler))
	}

	return colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// renderRows fills the frame buffer slots for rows [minRow, maxRow).
// Each slot is owned by exactly one task, so no synchronization is
// needed on the buffer.
func (rt *Raytracer) renderRows(buf []core.Vec3, minRow, maxRow int) {
	for row := minRow; row < maxRow; row++ {
		for i := 0; i < rt.config.Width; i++ {
			buf[row*rt.config.Width+i] = rt.samplePixel(i, row)
		}
	}
}

// RenderColors renders the scene and returns per-pixel linear colors in
// scanline order, top row first
func (rt *Raytracer) RenderColors() []core.Vec3 {
	buf := make([]core.Vec3, rt.config.Width*rt.config.Height)

	rowsPerTask := rt.config.RowsPerTask
	if rowsPerTask <= 0 {
		rowsPerTask = 1
	}
	numTasks := (rt.config.Height + rowsPerTask - 1) / rowsPerTask

	pool := NewWorkerPool(rt.config.Workers, numTasks)
	pool.Start(func(task RowTask) {
		rt.renderRows(buf, task.MinRow, task.MaxRow)
	})

	for start := 0; start < rt.config.Height; start += rowsPerTask {
		end := min(start+rowsPerTask, rt.config.Height)
		pool.Submit(RowTask{MinRow: start, MaxRow: end})
	}
	pool.Wait()

	return buf
}

// Render renders the scene into an 8-bit image
func (rt *Raytracer) Render() *image.RGBA {
	buf := rt.RenderColors()

	img := image.NewRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))
	for row := 0; row < rt.config.Height; row++ {
		for i := 0; i < rt.config.Width; i++ {
			img.SetRGBA(i, row, PixelColor(buf[row*rt.config.Width+i]))
		}
	}
	return img
}

// PixelColor converts a linear color to RGBA with gamma correction,
// clamping and quantization to [0, 255]
func PixelColor(colorVec core.Vec3) color.RGBA {
	// Gamma 2.0: square root per channel
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
