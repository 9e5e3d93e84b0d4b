package svg2font

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Generator runs the icon-to-font pipeline. Create one with New; a
// Generator is safe for concurrent use since every run owns its own state.
type Generator struct {
	cfg config
}

// New creates a Generator. With no options it uses 1000 units per em, a
// 1.0-unit curve tolerance, no margin and no side bearings.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Generator{cfg: cfg}
}

// Skipped records one icon dropped from the run because of a per-icon
// geometry fault.
type Skipped struct {
	Name   string
	Source string
	Err    error
}

// Result is the outcome of a successful run.
type Result struct {
	// Font holds the serialized TrueType font.
	Font []byte

	// Map is the icon name to codepoint mapping of the generated font.
	Map *CodepointMap

	// Skipped lists icons dropped because of per-icon geometry faults.
	// Empty when FailFast is set.
	Skipped []Skipped
}

// Generate runs the pipeline over already-extracted icons.
//
// Per-icon work runs on the configured worker pool; no state is shared
// between icons until all workers have joined. Per-icon geometry faults
// (ErrInvalidGeometry, ErrInconsistentWinding) skip the icon and report it
// in Result.Skipped, unless WithFailFast was given, in which case the first
// such fault aborts. Duplicate names, codepoint exhaustion and
// serialization faults always abort.
func (g *Generator) Generate(icons []*Icon, familyName string) (*Result, error) {
	if len(icons) == 0 {
		return nil, fmt.Errorf("%w: no icons to generate from", ErrInvalidGeometry)
	}

	type outcome struct {
		icon  *Icon
		glyph *Glyph
		err   error
	}
	outcomes := make([]outcome, len(icons))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < g.cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				icon := icons[i]
				glyph, err := g.buildOne(icon)
				outcomes[i] = outcome{icon: icon, glyph: glyph, err: err}
			}
		}()
	}
	for i := range icons {
		jobs <- i
	}
	close(jobs)
	wg.Wait() // barrier: allocation and assembly need the complete set

	var kept []*Icon
	glyphs := make(map[string]*Glyph, len(icons))
	var skipped []Skipped
	for _, oc := range outcomes {
		if oc.err != nil {
			if g.cfg.failFast || !isPerIconFault(oc.err) {
				return nil, oc.err
			}
			Logger().Warn("skipping icon", "icon", oc.icon.Name, "source", oc.icon.Source, "err", oc.err)
			skipped = append(skipped, Skipped{Name: oc.icon.Name, Source: oc.icon.Source, Err: oc.err})
			continue
		}
		kept = append(kept, oc.icon)
		glyphs[oc.icon.Name] = oc.glyph
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: every icon was skipped", ErrInvalidGeometry)
	}

	cm, err := AllocateCodepoints(kept)
	if err != nil {
		return nil, err
	}

	font, err := AssembleFont(glyphs, cm, familyName)
	if err != nil {
		return nil, err
	}

	Logger().Info("font generated",
		"family", familyName, "glyphs", cm.Len()+1, "bytes", len(font), "skipped", len(skipped))
	return &Result{Font: font, Map: cm, Skipped: skipped}, nil
}

// buildOne runs the per-icon stages: normalize, reduce, build.
func (g *Generator) buildOne(icon *Icon) (*Glyph, error) {
	ng, err := Normalize(icon, g.cfg)
	if err != nil {
		return nil, err
	}
	return BuildGlyph(Reduce(ng, g.cfg))
}

// isPerIconFault reports whether an error is a per-icon geometry fault
// subject to the skip policy, as opposed to a run-level fault.
func isPerIconFault(err error) bool {
	return errors.Is(err, ErrInvalidGeometry) || errors.Is(err, ErrInconsistentWinding)
}

// GenerateDir discovers *.svg files directly inside dir (no recursion),
// parses them and runs Generate. Files that fail to parse follow the same
// skip policy as geometry faults.
func (g *Generator) GenerateDir(dir, familyName string) (*Result, error) {
	paths, err := DiscoverSVGs(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no SVG files found in %s", dir)
	}
	Logger().Info("scanning icons", "dir", dir, "files", len(paths))

	var icons []*Icon
	var preSkipped []Skipped
	for _, p := range paths {
		icon, err := LoadIcon(p)
		if err != nil {
			if g.cfg.failFast || !isPerIconFault(err) {
				return nil, err
			}
			Logger().Warn("skipping unparseable file", "source", p, "err", err)
			preSkipped = append(preSkipped, Skipped{Name: iconNameForPath(p), Source: p, Err: err})
			continue
		}
		Logger().Debug("parsed icon", "icon", icon.Name, "source", p, "contours", len(icon.Contours))
		icons = append(icons, icon)
	}
	if len(icons) == 0 {
		return nil, fmt.Errorf("%w: no parseable SVG files in %s", ErrInvalidGeometry, dir)
	}

	res, err := g.Generate(icons, familyName)
	if err != nil {
		return nil, err
	}
	res.Skipped = append(preSkipped, res.Skipped...)
	return res, nil
}

// DiscoverSVGs lists the *.svg files directly inside dir, sorted by file
// name for a stable traversal order.
func DiscoverSVGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func iconNameForPath(p string) string {
	stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	return NameFromFilename(stem)
}

// FontFileBase returns the output file base name for a font family:
// lowercased with spaces replaced by underscores, e.g. "My Icons" yields
// "my_icons".
func FontFileBase(familyName string) string {
	return strings.ReplaceAll(strings.ToLower(familyName), " ", "_")
}
