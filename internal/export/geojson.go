package export

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// FeatureCollection builds one GeoJSON collection holding the city's
// district polygons followed by its markers.
func FeatureCollection(cl CityLayers) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(cl.Polygons)+len(cl.Markers)),
	}
	for _, p := range cl.Polygons {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       p.Key,
			Geometry: p.Geometry,
			Properties: map[string]any{
				"kind":          "district",
				"city":          cl.City,
				"name":          p.Label,
				"type":          p.Classification.String(),
				"fill_color":    p.Style.FillColor,
				"stroke_color":  p.Style.StrokeColor,
				"stroke_weight": p.Style.StrokeWeight,
				"fill_opacity":  p.Style.FillOpacity,
			},
		})
	}
	for _, m := range cl.Markers {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       m.Key,
			Geometry: m.Geometry,
			Properties: map[string]any{
				"kind":  "marker",
				"city":  cl.City,
				"title": m.Title,
			},
		})
	}
	return fc
}

// WriteGeoJSON writes the city's layers as a GeoJSON FeatureCollection.
func WriteGeoJSON(path string, cl CityLayers) error {
	data, err := FeatureCollection(cl).MarshalJSON()
	if err != nil {
		return eris.Wrap(err, "export: encode geojson")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}
