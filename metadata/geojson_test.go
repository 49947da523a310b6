package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venicegeo/geojson-go/geojson"
)

func TestGeoJSONFeature(t *testing.T) {
	meta, err := Parse(writeSampleScene(t))
	require.NoError(t, err)

	feature, err := meta.GeoJSONFeature()
	require.NoError(t, err)

	assert.Equal(t, "LC08_L1TP_047027_20131014_20170308_01_T1", feature.IDStr())
	assert.Equal(t, "LANDSAT_8", feature.PropertyString("satellite"))
	assert.Equal(t, "OLI_TIRS", feature.PropertyString("instrument"))
	assert.Equal(t, "2013-10-14", feature.PropertyString("acquisitionDate"))
	assert.Equal(t, 47, feature.PropertyInt("wrsPath"))
	assert.Equal(t, 27, feature.PropertyInt("wrsRow"))

	polygon, ok := feature.Geometry.(*geojson.Polygon)
	require.True(t, ok)
	require.Len(t, polygon.Coordinates, 1)
	ring := polygon.Coordinates[0]
	require.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[4])
	assert.InDelta(t, -124.098706, ring[0][0], 1e-9)
	assert.InDelta(t, 47.695860, ring[0][1], 1e-9)

	require.Len(t, feature.Bbox, 4)
}

func TestGeoJSONFeature_NoBoundingCoords(t *testing.T) {
	meta := &Metadata{}
	_, err := meta.GeoJSONFeature()
	assert.Error(t, err)
}
