package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cipherchabon/svg2font"
)

const helpBanner = `svg2font - compile SVG icons into a TrueType icon font

Each *.svg file in the input directory becomes one glyph, mapped to a
Private Use Area codepoint starting at U+E000.

`

var (
	input     = flag.String("in", "./icons", "Input directory containing SVG files")
	output    = flag.String("out", "./output", "Output directory for generated files")
	name      = flag.String("name", "Icons", "Font family name")
	preview   = flag.Bool("preview", false, "Generate an HTML preview page")
	manifest  = flag.Bool("manifest", false, "Generate a JSON manifest")
	samples   = flag.Int("samples", 0, "Render per-glyph PNG samples at the given pixel size")
	tolerance = flag.Float64("tolerance", svg2font.DefaultTolerance, "Curve approximation tolerance in font units")
	margin    = flag.Float64("margin", svg2font.DefaultMargin, "Em-square margin in font units")
	bearing   = flag.Int("bearing", svg2font.DefaultSideBearing, "Side bearing in font units")
	workers   = flag.Int("conc", runtime.NumCPU(), "Number of icons to process concurrently")
	failFast  = flag.Bool("failfast", false, "Abort on the first bad icon instead of skipping it")
	verbose   = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		svg2font.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []svg2font.Option{
		svg2font.WithTolerance(*tolerance),
		svg2font.WithMargin(*margin),
		svg2font.WithSideBearing(*bearing),
		svg2font.WithWorkers(*workers),
	}
	if *failFast {
		opts = append(opts, svg2font.WithFailFast())
	}

	gen := svg2font.New(opts...)
	res, err := gen.GenerateDir(*input, *name)
	if err != nil {
		log.Fatalf("svg2font: %v", err)
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("svg2font: %v", err)
	}

	base := svg2font.FontFileBase(*name)
	ttfPath := filepath.Join(*output, base+".ttf")
	if err := os.WriteFile(ttfPath, res.Font, 0o644); err != nil {
		log.Fatalf("svg2font: %v", err)
	}
	log.Printf("Generated: %s", ttfPath)

	if *preview {
		previewPath := filepath.Join(*output, base+"_preview.html")
		if err := writeFileWith(previewPath, func(f *os.File) error {
			return svg2font.WritePreview(f, res.Font, res.Map, *name)
		}); err != nil {
			log.Fatalf("svg2font: %v", err)
		}
		log.Printf("Generated: %s", previewPath)
	}

	if *manifest {
		manifestPath := filepath.Join(*output, base+".json")
		if err := writeFileWith(manifestPath, func(f *os.File) error {
			return svg2font.WriteManifest(f, res.Map, *name)
		}); err != nil {
			log.Fatalf("svg2font: %v", err)
		}
		log.Printf("Generated: %s", manifestPath)
	}

	if *samples > 0 {
		samplesDir := filepath.Join(*output, base+"_samples")
		if err := svg2font.RenderSamples(res.Font, res.Map, samplesDir, *samples); err != nil {
			log.Fatalf("svg2font: %v", err)
		}
		log.Printf("Generated: %s", samplesDir)
	}

	for _, s := range res.Skipped {
		log.Printf("Warning: skipped %s: %v", s.Source, s.Err)
	}
	log.Printf("Done! %d icons processed, %d skipped.", res.Map.Len(), len(res.Skipped))
}

func writeFileWith(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
