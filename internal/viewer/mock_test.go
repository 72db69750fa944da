package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/city-viewer/internal/catalog"
	"github.com/sells-group/city-viewer/internal/model"
)

// transition is one recorded AnimateTo call.
type transition struct {
	center   model.LatLng
	zoom     float64
	duration time.Duration
}

// mockSurface implements Surface for testing.
type mockSurface struct {
	baseLayers    []TileLayer
	views         []model.LatLng
	transitions   []transition
	polygonLayers [][]Polygon
	markerLayers  [][]Marker
}

func (m *mockSurface) SetBaseLayer(layer TileLayer) {
	m.baseLayers = append(m.baseLayers, layer)
}

func (m *mockSurface) SetView(center model.LatLng, _ float64) {
	m.views = append(m.views, center)
}

func (m *mockSurface) AnimateTo(center model.LatLng, zoom float64, d time.Duration) {
	m.transitions = append(m.transitions, transition{center: center, zoom: zoom, duration: d})
}

func (m *mockSurface) RenderPolygonLayer(polygons []Polygon) {
	m.polygonLayers = append(m.polygonLayers, polygons)
}

func (m *mockSurface) RenderMarkerLayer(markers []Marker) {
	m.markerLayers = append(m.markerLayers, markers)
}

func (m *mockSurface) lastPolygons() []Polygon { return m.polygonLayers[len(m.polygonLayers)-1] }
func (m *mockSurface) lastMarkers() []Marker   { return m.markerLayers[len(m.markerLayers)-1] }

func ring(lat, lng, size float64) []model.LatLng {
	return []model.LatLng{
		{Lat: lat, Lng: lng},
		{Lat: lat, Lng: lng + size},
		{Lat: lat + size, Lng: lng + size},
		{Lat: lat + size, Lng: lng},
		{Lat: lat, Lng: lng},
	}
}

// cityA and cityB mirror the New York / San Francisco sample cities.
func cityA() model.City {
	return model.City{
		Name:   "New York",
		Center: model.LatLng{Lat: 40.7128, Lng: -74.006},
		Districts: []model.District{
			{Classification: model.ClassificationResidential, Label: "District A", Boundary: ring(40.705, -74.01, 0.01)},
			{Classification: model.ClassificationCommercial, Label: "District B", Boundary: ring(40.705, -74.0, 0.01)},
		},
		PointsOfInterest: []model.PointOfInterest{
			{ID: "1", Position: model.LatLng{Lat: 40.71, Lng: -74.005}, Title: "AirBnB 1"},
			{ID: "2", Position: model.LatLng{Lat: 40.708, Lng: -74.008}, Title: "AirBnB 2"},
		},
	}
}

func cityB() model.City {
	return model.City{
		Name:   "San Francisco",
		Center: model.LatLng{Lat: 37.7749, Lng: -122.4194},
		Districts: []model.District{
			{Classification: model.ClassificationResidential, Label: "District X", Boundary: ring(37.775, -122.425, 0.01)},
			{Classification: model.ClassificationMixed, Label: "District Y", Boundary: ring(37.775, -122.415, 0.01)},
		},
		PointsOfInterest: []model.PointOfInterest{
			{ID: "3", Position: model.LatLng{Lat: 37.78, Lng: -122.42}, Title: "AirBnB A"},
			{ID: "4", Position: model.LatLng{Lat: 37.782, Lng: -122.412}, Title: "AirBnB B"},
		},
	}
}

func newTestCatalog(t *testing.T, cities ...model.City) *catalog.Catalog {
	t.Helper()
	if len(cities) == 0 {
		cities = []model.City{cityA(), cityB()}
	}
	cat, err := catalog.New(cities)
	require.NoError(t, err)
	return cat
}
