package geo

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/city-viewer/internal/model"
)

// ErrMalformedGeometry marks a district boundary that cannot be drawn.
var ErrMalformedGeometry = eris.New("geo: malformed geometry")

// minRingVertices is the smallest closed ring: a triangle plus the
// repeated first vertex.
const minRingVertices = 4

// Polygon converts a district boundary into a single-ring polygon in
// SRID 4326 with (lng, lat) axis order. The ring must be closed, have a
// non-zero area and not cross itself.
func Polygon(boundary []model.LatLng) (*geom.Polygon, error) {
	if len(boundary) < minRingVertices {
		return nil, eris.Wrapf(ErrMalformedGeometry, "ring has %d vertices, need at least %d", len(boundary), minRingVertices)
	}
	if boundary[0] != boundary[len(boundary)-1] {
		return nil, eris.Wrap(ErrMalformedGeometry, "ring is not closed")
	}

	flat := make([]float64, 0, len(boundary)*2)
	for _, p := range boundary {
		flat = append(flat, p.Lng, p.Lat)
	}

	if selfIntersects(boundary) {
		return nil, eris.Wrap(ErrMalformedGeometry, "ring intersects itself")
	}
	poly := geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}).SetSRID(4326)
	if poly.Area() == 0 {
		return nil, eris.Wrap(ErrMalformedGeometry, "ring has zero area")
	}

	return poly, nil
}

// Point converts a position into a point geometry in SRID 4326.
func Point(p model.LatLng) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat}).SetSRID(4326)
}

// selfIntersects reports whether any two non-adjacent edges of the closed
// ring touch or cross.
func selfIntersects(ring []model.LatLng) bool {
	n := len(ring) - 1 // edge count
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsIntersect(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, q1, q2 model.LatLng) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}

// orientation is the cross product of (b-a) and (c-a).
func orientation(a, b, c model.LatLng) float64 {
	return (b.Lng-a.Lng)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lng-a.Lng)
}

func onSegment(a, b, p model.LatLng) bool {
	return p.Lng >= min(a.Lng, b.Lng) && p.Lng <= max(a.Lng, b.Lng) &&
		p.Lat >= min(a.Lat, b.Lat) && p.Lat <= max(a.Lat, b.Lat)
}
