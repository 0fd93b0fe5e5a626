package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Shihab-Shahriar/raytracing-go/pkg/renderer"
	"github.com/Shihab-Shahriar/raytracing-go/pkg/scene"
)

func main() {
	log.SetFlags(0)

	config := renderer.DefaultConfig()
	var seed uint
	var outputFile string
	flag.IntVar(&config.Width, "width", config.Width, "image width in pixels")
	flag.IntVar(&config.Height, "height", config.Height, "image height in pixels")
	flag.IntVar(&config.SamplesPerPixel, "samples", config.SamplesPerPixel, "samples per pixel")
	flag.IntVar(&config.MaxDepth, "depth", config.MaxDepth, "maximum ray bounce depth")
	flag.UintVar(&seed, "seed", uint(config.Seed), "random seed (16 bit)")
	flag.IntVar(&config.Workers, "workers", 0, "worker goroutines (0 = all CPUs)")
	flag.IntVar(&config.RowsPerTask, "rows", 1, "scanlines per work unit")
	flag.StringVar(&outputFile, "o", "-", "output file: .ppm or .png ('-' = PPM on stdout)")
	flag.Parse()

	if seed > 0xFFFF {
		log.Fatalf("seed %d does not fit in 16 bits", seed)
	}
	config.Seed = uint16(seed)

	write, w, closer, err := openOutput(outputFile)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	sc, err := scene.NewCoverScene(config.Seed)
	if err != nil {
		log.Fatalf("ERROR: building scene: %v", err)
	}

	cameraConfig := sc.CameraConfig
	cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	raytracer, err := renderer.NewRaytracer(sc, camera, config)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	startTime := time.Now()
	img := raytracer.Render()
	log.Printf("render completed in %v", time.Since(startTime).Round(time.Millisecond))

	if err := write(w, img); err != nil {
		log.Fatalf("ERROR: writing image: %v", err)
	}
}

type imageWriter func(io.Writer, *image.RGBA) error

// openOutput picks the encoder by file extension; "-" streams a plain
// pixel map to stdout
func openOutput(outputFile string) (imageWriter, io.Writer, io.Closer, error) {
	if outputFile == "-" {
		return renderer.WritePPM, os.Stdout, nil, nil
	}

	var write imageWriter
	switch ext := strings.ToLower(filepath.Ext(outputFile)); ext {
	case ".ppm":
		write = renderer.WritePPM
	case ".png":
		write = renderer.WritePNG
	default:
		return nil, nil, nil, fmt.Errorf("unsupported file extension %q (supported: ppm, png)", ext)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not open output file %q: %w", outputFile, err)
	}
	return write, f, f, nil
}
