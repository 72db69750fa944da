package viewer

import (
	"time"

	"github.com/twpayne/go-geom"

	"github.com/sells-group/city-viewer/internal/geo"
	"github.com/sells-group/city-viewer/internal/model"
)

// Surface is the map-rendering engine the viewer drives. Implementations
// own tiles, gestures, projection and drawing. AnimateTo must return
// without waiting for the animation; a later AnimateTo supersedes one in
// flight.
type Surface interface {
	// SetBaseLayer configures the background tile source. Called once.
	SetBaseLayer(layer TileLayer)

	// SetView places the map without animation.
	SetView(center model.LatLng, zoom float64)

	// AnimateTo starts an animated transition to center.
	AnimateTo(center model.LatLng, zoom float64, duration time.Duration)

	// RenderPolygonLayer replaces the whole polygon layer.
	RenderPolygonLayer(polygons []Polygon)

	// RenderMarkerLayer replaces the whole marker layer.
	RenderMarkerLayer(markers []Marker)
}

// TileLayer is the fixed base map configuration.
type TileLayer struct {
	URLTemplate   string
	Attribution   string
	MarkerIconURL string
}

// Polygon is a styled district ready for drawing.
type Polygon struct {
	Key            string
	Label          string
	Classification model.Classification
	Style          geo.Style
	Geometry       *geom.Polygon
}

// Marker is a point of interest ready for drawing, keyed by its id.
type Marker struct {
	Key      string
	Position model.LatLng
	Title    string
	Geometry *geom.Point
}
