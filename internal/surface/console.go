// Package surface provides map surfaces the viewer can drive without a
// graphical map engine: a text console for interactive sessions and an
// in-memory snapshot for exports.
package surface

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/city-viewer/internal/model"
	"github.com/sells-group/city-viewer/internal/viewer"
)

// flight is an animated transition the console considers in progress.
type flight struct {
	target model.LatLng
	until  time.Time
}

// Console prints every map command as a line of text.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	now      func() time.Time
	inflight *flight
	log      *zap.Logger
}

// NewConsole returns a console surface writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out: out,
		now: time.Now,
		log: zap.L().With(zap.String("component", "surface.console")),
	}
}

// SetBaseLayer implements viewer.Surface.
func (c *Console) SetBaseLayer(layer viewer.TileLayer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printf("tiles   %s\n", layer.URLTemplate)
	if layer.Attribution != "" {
		c.printf("        %s\n", layer.Attribution)
	}
}

// SetView implements viewer.Surface.
func (c *Console) SetView(center model.LatLng, zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight = nil
	c.printf("view    %s zoom %g\n", center, zoom)
}

// AnimateTo implements viewer.Surface. It returns immediately; a
// transition still running is abandoned in favor of the new one.
func (c *Console) AnimateTo(center model.LatLng, zoom float64, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.inflight != nil && now.Before(c.inflight.until) {
		c.log.Debug("superseding transition",
			zap.Stringer("abandoned", c.inflight.target),
			zap.Stringer("target", center),
		)
		c.printf("cancel  %s\n", c.inflight.target)
	}
	c.inflight = &flight{target: center, until: now.Add(duration)}
	c.printf("fly     %s zoom %g over %s\n", center, zoom, duration)
}

// RenderPolygonLayer implements viewer.Surface.
func (c *Console) RenderPolygonLayer(polygons []viewer.Polygon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printf("districts (%d)\n", len(polygons))
	for _, p := range polygons {
		c.printf("  [%s] %s (%s)\n", p.Style.FillColor, p.Label, p.Classification)
	}
}

// RenderMarkerLayer implements viewer.Surface.
func (c *Console) RenderMarkerLayer(markers []viewer.Marker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printf("markers (%d)\n", len(markers))
	for _, m := range markers {
		c.printf("  #%s %s @ %s\n", m.Key, m.Title, m.Position)
	}
}

func (c *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.log.Debug("console write failed", zap.Error(err))
	}
}
