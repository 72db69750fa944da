package export

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// WriteShapefiles writes base_districts.shp (polygons) and
// base_markers.shp (points) with their .shx and .dbf companions. It
// returns the .shp paths.
func WriteShapefiles(base string, cl CityLayers) ([]string, error) {
	districts := base + "_districts.shp"
	if err := writeDistrictShapes(districts, cl); err != nil {
		return nil, err
	}
	markers := base + "_markers.shp"
	if err := writeMarkerShapes(markers, cl); err != nil {
		return nil, err
	}
	return []string{districts, markers}, nil
}

func writeDistrictShapes(path string, cl CityLayers) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return eris.Wrapf(err, "export: create shapefile %s", path)
	}
	defer w.Close()

	if err := w.SetFields([]shp.Field{
		shp.StringField("KEY", 64),
		shp.StringField("LABEL", 128),
		shp.StringField("CLASS", 16),
		shp.StringField("FILL", 8),
	}); err != nil {
		return eris.Wrap(err, "export: set district fields")
	}

	for _, p := range cl.Polygons {
		if p.Geometry == nil {
			continue
		}
		poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{outerRing(p.Geometry)}))
		row := int(w.Write(&poly))
		for i, v := range []string{p.Key, p.Label, p.Classification.String(), p.Style.FillColor} {
			if err := w.WriteAttribute(row, i, v); err != nil {
				return eris.Wrapf(err, "export: write district attribute %s", p.Key)
			}
		}
	}
	return nil
}

func writeMarkerShapes(path string, cl CityLayers) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return eris.Wrapf(err, "export: create shapefile %s", path)
	}
	defer w.Close()

	if err := w.SetFields([]shp.Field{
		shp.StringField("ID", 64),
		shp.StringField("TITLE", 128),
	}); err != nil {
		return eris.Wrap(err, "export: set marker fields")
	}

	for _, m := range cl.Markers {
		row := int(w.Write(&shp.Point{X: m.Position.Lng, Y: m.Position.Lat}))
		for i, v := range []string{m.Key, m.Title} {
			if err := w.WriteAttribute(row, i, v); err != nil {
				return eris.Wrapf(err, "export: write marker attribute %s", m.Key)
			}
		}
	}
	return nil
}

// outerRing returns the polygon's exterior ring in clockwise order, as
// the shapefile format expects for outer rings.
func outerRing(p *geom.Polygon) []shp.Point {
	flat := p.LinearRing(0).FlatCoords()
	pts := make([]shp.Point, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		pts = append(pts, shp.Point{X: flat[i], Y: flat[i+1]})
	}
	if signedArea(pts) > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

// signedArea is the shoelace sum; positive means counter-clockwise.
func signedArea(pts []shp.Point) float64 {
	var sum float64
	for i := 0; i+1 < len(pts); i++ {
		sum += pts[i].X*pts[i+1].Y - pts[i+1].X*pts[i].Y
	}
	return sum / 2
}
