package viewer

import (
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sells-group/city-viewer/internal/geo"
	"github.com/sells-group/city-viewer/internal/model"
)

// BuildPolygons styles each district of city. A district whose boundary
// is malformed is left out and reported in the returned error; the others
// are still returned. The output depends only on the input.
func BuildPolygons(city *model.City) ([]Polygon, error) {
	polygons := make([]Polygon, 0, len(city.Districts))
	var errs error
	for i, d := range city.Districts {
		g, err := geo.Polygon(d.Boundary)
		if err != nil {
			errs = multierr.Append(errs, eris.Wrapf(err, "district %d (%s)", i, d.DisplayLabel()))
			continue
		}
		polygons = append(polygons, Polygon{
			Key:            fmt.Sprintf("%s/%d", city.Name, i),
			Label:          d.DisplayLabel(),
			Classification: d.Classification,
			Style:          geo.StyleFor(d.Classification),
			Geometry:       g,
		})
	}
	return polygons, errs
}

// DistrictLayer draws the selected city's districts.
type DistrictLayer struct {
	surface  Surface
	rendered []Polygon
	failures []error
}

// NewDistrictLayer renders the current city and subscribes to changes.
func NewDistrictLayer(state *ViewState, surface Surface) *DistrictLayer {
	l := &DistrictLayer{surface: surface}
	l.render(state.Selected())
	state.Subscribe(func(_, next *model.City) { l.render(next) })
	return l
}

// render replaces the polygon layer with city's districts.
func (l *DistrictLayer) render(city *model.City) {
	polygons, err := BuildPolygons(city)
	l.failures = multierr.Errors(err)
	for _, f := range l.failures {
		zap.L().Warn("skipping malformed district",
			zap.String("component", "viewer.districts"),
			zap.String("city", city.Name),
			zap.Error(f),
		)
	}

	l.rendered = polygons
	l.surface.RenderPolygonLayer(polygons)
}

// Rendered returns the polygons from the last render.
func (l *DistrictLayer) Rendered() []Polygon { return l.rendered }

// Failures returns the per-district errors from the last render.
func (l *DistrictLayer) Failures() []error { return l.failures }
