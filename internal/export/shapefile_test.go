package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteShapefiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "chicago")
	layers := builtinLayers(t, "Chicago")

	files, err := WriteShapefiles(base, layers[0])
	require.NoError(t, err)
	require.Equal(t, []string{base + "_districts.shp", base + "_markers.shp"}, files)

	reader, err := shp.Open(files[0])
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	var labels, classes []string
	for reader.Next() {
		_, shape := reader.Shape()
		poly, ok := shape.(*shp.Polygon)
		require.True(t, ok)
		assert.Equal(t, int32(5), poly.NumPoints)
		labels = append(labels, strings.TrimRight(reader.Attribute(1), "\x00 "))
		classes = append(classes, strings.TrimRight(reader.Attribute(2), "\x00 "))
	}
	assert.Equal(t, []string{"The Loop", "South Branch", "Near North"}, labels)
	assert.Equal(t, []string{"commercial", "other", "residential"}, classes)

	markers, err := shp.Open(files[1])
	require.NoError(t, err)
	defer func() { _ = markers.Close() }()

	var count int
	for markers.Next() {
		_, shape := markers.Shape()
		pt, ok := shape.(*shp.Point)
		require.True(t, ok)
		if count == 0 {
			assert.InDelta(t, -87.6359, pt.X, 1e-9)
			assert.InDelta(t, 41.8789, pt.Y, 1e-9)
			assert.Equal(t, "Willis Tower", strings.TrimRight(markers.Attribute(1), "\x00 "))
		}
		count++
	}
	assert.Equal(t, 3, count)
}

func TestOuterRing_Clockwise(t *testing.T) {
	layers := builtinLayers(t, "New York")
	pts := outerRing(layers[0].Polygons[0].Geometry)

	require.Len(t, pts, 5)
	assert.Less(t, signedArea(pts), 0.0)
	assert.Equal(t, pts[0], pts[len(pts)-1])
}
