// Package export writes the layers the viewer renders for each city to
// files: GeoJSON, ESRI shapefiles and XLSX workbooks.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/city-viewer/internal/catalog"
	"github.com/sells-group/city-viewer/internal/model"
	"github.com/sells-group/city-viewer/internal/surface"
	"github.com/sells-group/city-viewer/internal/viewer"
)

// Format names an output file format.
type Format string

// Supported formats.
const (
	FormatGeoJSON   Format = "geojson"
	FormatShapefile Format = "shp"
	FormatXLSX      Format = "xlsx"
)

// ParseFormats validates and de-duplicates format names, keeping order.
func ParseFormats(names []string) ([]Format, error) {
	if len(names) == 0 {
		return nil, eris.New("export: no formats given")
	}
	seen := make(map[Format]bool, len(names))
	var out []Format
	for _, n := range names {
		f := Format(strings.ToLower(strings.TrimSpace(n)))
		switch f {
		case FormatGeoJSON, FormatShapefile, FormatXLSX:
		default:
			return nil, eris.Errorf("export: unknown format %q (valid: geojson, shp, xlsx)", n)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

// CityLayers is what the map shows while one city is selected.
type CityLayers struct {
	City     string
	Center   model.LatLng
	Zoom     float64
	Polygons []viewer.Polygon
	Markers  []viewer.Marker
	Failures []error
}

// Capture selects each named city in turn on a snapshot surface and
// records the rendered layers. An empty names list captures the whole
// catalog in catalog order.
func Capture(cat *catalog.Catalog, names []string, opts viewer.Options) ([]CityLayers, error) {
	if len(names) == 0 {
		names = cat.Names()
	}

	snap := surface.NewSnapshot()
	v := viewer.New(cat, snap, opts)

	out := make([]CityLayers, 0, len(names))
	for _, name := range names {
		if err := v.Selection.Choose(name); err != nil {
			return nil, eris.Wrapf(err, "export: capture %q", name)
		}
		f := snap.Frame()
		out = append(out, CityLayers{
			City:     name,
			Center:   f.Center,
			Zoom:     f.Zoom,
			Polygons: f.Polygons,
			Markers:  f.Markers,
			Failures: v.Districts.Failures(),
		})
	}
	return out, nil
}

// Options configures Run.
type Options struct {
	Dir         string
	Formats     []Format
	Concurrency int
}

// Result summarizes an export run.
type Result struct {
	RunID     string              `json:"run_id"`
	CreatedAt time.Time           `json:"created_at"`
	Files     map[string][]string `json:"files"` // city name -> files written
}

// Run writes every city in every format under opts.Dir, plus a
// manifest.json describing the run.
func Run(ctx context.Context, layers []CityLayers, opts Options) (*Result, error) {
	if opts.Dir == "" {
		return nil, eris.New("export: output directory is required")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "export: create %s", opts.Dir)
	}

	res := &Result{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Files:     make(map[string][]string, len(layers)),
	}
	log := zap.L().With(zap.String("component", "export"), zap.String("run_id", res.RunID))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	stems := fileStems(layers)
	for i, cl := range layers {
		stem := stems[i]
		for _, f := range opts.Formats {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return eris.Wrap(err, "export: cancelled")
				}
				files, err := write(filepath.Join(opts.Dir, stem), f, cl)
				if err != nil {
					return eris.Wrapf(err, "export: %s %s", cl.City, f)
				}
				mu.Lock()
				res.Files[cl.City] = append(res.Files[cl.City], files...)
				mu.Unlock()
				log.Debug("wrote city", zap.String("city", cl.City), zap.String("format", string(f)), zap.Strings("files", files))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for city := range res.Files {
		sort.Strings(res.Files[city])
	}
	if err := writeManifest(opts.Dir, res); err != nil {
		return nil, err
	}

	log.Info("export complete", zap.Int("cities", len(layers)), zap.Int("formats", len(opts.Formats)))
	return res, nil
}

// fileStems assigns every city a distinct, non-empty file name stem. A
// name with no ASCII letters or digits falls back to its position
// ("city-3"); a stem already taken gets a numeric suffix ("new-york-2").
func fileStems(layers []CityLayers) []string {
	stems := make([]string, len(layers))
	used := make(map[string]bool, len(layers))
	for i, cl := range layers {
		stem := Slug(cl.City)
		if stem == "" {
			stem = fmt.Sprintf("city-%d", i+1)
		}
		if used[stem] {
			n := 2
			for used[fmt.Sprintf("%s-%d", stem, n)] {
				n++
			}
			stem = fmt.Sprintf("%s-%d", stem, n)
		}
		used[stem] = true
		stems[i] = stem
	}
	return stems
}

func write(base string, f Format, cl CityLayers) ([]string, error) {
	switch f {
	case FormatGeoJSON:
		path := base + ".geojson"
		return []string{path}, WriteGeoJSON(path, cl)
	case FormatShapefile:
		return WriteShapefiles(base, cl)
	case FormatXLSX:
		path := base + ".xlsx"
		return []string{path}, WriteXLSX(path, cl)
	default:
		return nil, eris.Errorf("export: unknown format %q", f)
	}
}

func writeManifest(dir string, res *Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: encode manifest")
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0o644); err != nil {
		return eris.Wrap(err, "export: write manifest")
	}
	return nil
}

// Slug turns a city name into an ASCII file name stem ("São Paulo" ->
// "sao-paulo"). It returns "" when the name has no ASCII letters or
// digits.
func Slug(name string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(stripped)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
