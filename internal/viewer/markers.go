package viewer

import (
	"github.com/sells-group/city-viewer/internal/geo"
	"github.com/sells-group/city-viewer/internal/model"
)

// BuildMarkers returns one marker per point of interest, keyed by id, in
// catalog order.
func BuildMarkers(city *model.City) []Marker {
	markers := make([]Marker, 0, len(city.PointsOfInterest))
	for _, poi := range city.PointsOfInterest {
		markers = append(markers, Marker{
			Key:      poi.ID,
			Position: poi.Position,
			Title:    poi.Title,
			Geometry: geo.Point(poi.Position),
		})
	}
	return markers
}

// MarkerLayer draws the selected city's points of interest.
type MarkerLayer struct {
	surface  Surface
	rendered []Marker
}

// NewMarkerLayer renders the current city and subscribes to changes.
func NewMarkerLayer(state *ViewState, surface Surface) *MarkerLayer {
	l := &MarkerLayer{surface: surface}
	l.render(state.Selected())
	state.Subscribe(func(_, next *model.City) { l.render(next) })
	return l
}

func (l *MarkerLayer) render(city *model.City) {
	l.rendered = BuildMarkers(city)
	l.surface.RenderMarkerLayer(l.rendered)
}

// Rendered returns the markers from the last render.
func (l *MarkerLayer) Rendered() []Marker { return l.rendered }
