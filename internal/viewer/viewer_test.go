package viewer

import (
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/city-viewer/internal/catalog"
	"github.com/sells-group/city-viewer/internal/model"
)

func TestNew_Defaults(t *testing.T) {
	surf := &mockSurface{}
	base := TileLayer{URLTemplate: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", Attribution: "OSM"}
	v := New(newTestCatalog(t), surf, Options{BaseLayer: base})

	assert.Equal(t, []TileLayer{base}, surf.baseLayers)
	assert.InDelta(t, float64(DefaultZoom), v.Viewport.Zoom(), 0.0001)

	require.NoError(t, v.Selection.Choose("San Francisco"))
	require.Len(t, surf.transitions, 1)
	assert.Equal(t, DefaultFlyDuration, surf.transitions[0].duration)
}

func TestViewer_EndToEnd(t *testing.T) {
	surf := &mockSurface{}
	v := New(newTestCatalog(t), surf, Options{Zoom: 13, FlyDuration: 1500 * time.Millisecond})

	// Initial state: city A placed, 2 polygons, 2 markers.
	assert.Equal(t, "New York", v.State.Selected().Name)
	assert.Equal(t, model.LatLng{Lat: 40.7128, Lng: -74.006}, v.Viewport.Center())
	assert.Len(t, surf.lastPolygons(), 2)
	assert.Len(t, surf.lastMarkers(), 2)
	assert.Empty(t, surf.transitions)

	// User picks city B.
	require.NoError(t, v.Selection.Choose("San Francisco"))

	require.Len(t, surf.transitions, 1)
	assert.Equal(t, model.LatLng{Lat: 37.7749, Lng: -122.4194}, surf.transitions[0].center)
	assert.InDelta(t, 13.0, surf.transitions[0].zoom, 0.0001)
	assert.Equal(t, 1500*time.Millisecond, surf.transitions[0].duration)

	require.Len(t, surf.lastPolygons(), 2)
	require.Len(t, surf.lastMarkers(), 2)
	for _, p := range surf.lastPolygons() {
		assert.NotContains(t, []string{"District A", "District B"}, p.Label)
	}
	for _, m := range surf.lastMarkers() {
		assert.NotContains(t, []string{"1", "2"}, m.Key)
	}
	assert.Equal(t, "San Francisco", v.Selection.Current())
}

func TestViewer_LayerCountsMatchCatalog(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	surf := &mockSurface{}
	v := New(cat, surf, Options{})

	for _, c := range cat.All() {
		require.NoError(t, v.State.Select(c))
		assert.Len(t, v.Districts.Rendered(), len(c.Districts), c.Name)
		assert.Len(t, surf.lastPolygons(), len(c.Districts), c.Name)
		assert.Len(t, v.Markers.Rendered(), len(c.PointsOfInterest), c.Name)
		assert.Len(t, surf.lastMarkers(), len(c.PointsOfInterest), c.Name)
	}
}

func TestViewer_ReselectIsIdempotent(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	surf := &mockSurface{}
	v := New(cat, surf, Options{})

	for _, c := range cat.All() {
		require.NoError(t, v.State.Select(c))
		transitions := len(surf.transitions)
		polygonRenders := len(surf.polygonLayers)
		markerRenders := len(surf.markerLayers)

		require.NoError(t, v.State.Select(c))
		assert.Equal(t, transitions, len(surf.transitions), c.Name)
		assert.Equal(t, polygonRenders, len(surf.polygonLayers), c.Name)
		assert.Equal(t, markerRenders, len(surf.markerLayers), c.Name)
	}
}

func TestViewer_DistinctCentersAnimateOnce(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)

	cities := cat.All()
	for _, c1 := range cities {
		for _, c2 := range cities {
			if c1.Center == c2.Center {
				continue
			}
			surf := &mockSurface{}
			v := New(cat, surf, Options{})
			require.NoError(t, v.State.Select(c1))
			before := len(surf.transitions)

			require.NoError(t, v.State.Select(c2))
			require.Len(t, surf.transitions, before+1, "%s -> %s", c1.Name, c2.Name)
			assert.Equal(t, c2.Center, surf.transitions[before].center)
		}
	}
}

func TestViewer_InvalidSelectionLeavesStateUnchanged(t *testing.T) {
	surf := &mockSurface{}
	v := New(newTestCatalog(t), surf, Options{})

	err := v.Selection.Choose("Gotham")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidSelection))
	assert.Equal(t, "New York", v.State.Selected().Name)
	assert.Empty(t, surf.transitions)
	assert.Len(t, surf.polygonLayers, 1)
	assert.Len(t, surf.markerLayers, 1)
}

func TestViewer_IndustrialDistrictUsesFallback(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	surf := &mockSurface{}
	v := New(cat, surf, Options{})

	require.NotPanics(t, func() { require.NoError(t, v.Selection.Choose("Chicago")) })

	var found bool
	for _, p := range v.Districts.Rendered() {
		if p.Label == "South Branch" {
			found = true
			assert.Equal(t, model.ClassificationOther, p.Classification)
			assert.Equal(t, "#cccccc", p.Style.FillColor)
		}
	}
	assert.True(t, found)
	assert.Empty(t, v.Districts.Failures())
}
