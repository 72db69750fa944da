package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/city-viewer/internal/catalog"
	"github.com/sells-group/city-viewer/internal/model"
	"github.com/sells-group/city-viewer/internal/viewer"
)

func TestSnapshot_TracksCurrentCity(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)

	s := NewSnapshot()
	v := viewer.New(cat, s, viewer.Options{BaseLayer: viewer.TileLayer{URLTemplate: "tiles"}})

	f := s.Frame()
	assert.Equal(t, "tiles", f.BaseLayer.URLTemplate)
	assert.Equal(t, model.LatLng{Lat: 40.7128, Lng: -74.006}, f.Center)
	assert.InDelta(t, 13.0, f.Zoom, 0.0001)
	assert.Equal(t, 0, f.Transitions)
	assert.Len(t, f.Polygons, 2)
	assert.Len(t, f.Markers, 2)

	require.NoError(t, v.Selection.Choose("Chicago"))
	f = s.Frame()
	assert.Equal(t, model.LatLng{Lat: 41.8781, Lng: -87.6298}, f.Center)
	assert.Equal(t, 1, f.Transitions)
	assert.Len(t, f.Polygons, 3)
	assert.Len(t, f.Markers, 3)
}

func TestSnapshot_FrameIsACopy(t *testing.T) {
	s := NewSnapshot()
	s.RenderMarkerLayer([]viewer.Marker{{Key: "1"}})

	f := s.Frame()
	f.Markers[0].Key = "mutated"
	assert.Equal(t, "1", s.Frame().Markers[0].Key)
}
