package surface

import (
	"sync"
	"time"

	"github.com/sells-group/city-viewer/internal/model"
	"github.com/sells-group/city-viewer/internal/viewer"
)

// Frame is the state of a Snapshot surface at one moment.
type Frame struct {
	BaseLayer   viewer.TileLayer
	Center      model.LatLng
	Zoom        float64
	Transitions int
	Polygons    []viewer.Polygon
	Markers     []viewer.Marker
}

// Snapshot keeps only what is currently on the map. Animations complete
// instantly.
type Snapshot struct {
	mu    sync.Mutex
	frame Frame
}

// NewSnapshot returns an empty snapshot surface.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// SetBaseLayer implements viewer.Surface.
func (s *Snapshot) SetBaseLayer(layer viewer.TileLayer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.BaseLayer = layer
}

// SetView implements viewer.Surface.
func (s *Snapshot) SetView(center model.LatLng, zoom float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Center, s.frame.Zoom = center, zoom
}

// AnimateTo implements viewer.Surface.
func (s *Snapshot) AnimateTo(center model.LatLng, zoom float64, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Center, s.frame.Zoom = center, zoom
	s.frame.Transitions++
}

// RenderPolygonLayer implements viewer.Surface.
func (s *Snapshot) RenderPolygonLayer(polygons []viewer.Polygon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Polygons = append([]viewer.Polygon(nil), polygons...)
}

// RenderMarkerLayer implements viewer.Surface.
func (s *Snapshot) RenderMarkerLayer(markers []viewer.Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Markers = append([]viewer.Marker(nil), markers...)
}

// Frame returns a copy of the current frame.
func (s *Snapshot) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.frame
	f.Polygons = append([]viewer.Polygon(nil), s.frame.Polygons...)
	f.Markers = append([]viewer.Marker(nil), s.frame.Markers...)
	return f
}
