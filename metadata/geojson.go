package metadata

import (
	"errors"

	"github.com/venicegeo/geojson-go/geojson"
)

// GeoJSONFeature renders the scene footprint as a GeoJSON feature: a
// closed polygon ring over the geographic bounding coordinates, with the
// scene-global attributes as properties
func (m *Metadata) GeoJSONFeature() (*geojson.Feature, error) {
	bc := m.Global.BoundingCoords
	if bc.West == 0 && bc.East == 0 && bc.North == 0 && bc.South == 0 {
		return nil, errors.New("scene has no bounding coordinates")
	}

	footprint := geojson.NewPolygon([][][]float64{{
		{bc.West, bc.North},
		{bc.East, bc.North},
		{bc.East, bc.South},
		{bc.West, bc.South},
		{bc.West, bc.North},
	}})

	properties := map[string]interface{}{
		"satellite":       m.Global.Satellite,
		"instrument":      m.Global.Instrument,
		"acquisitionDate": m.Global.AcquisitionDate,
		"dataProvider":    m.Global.DataProvider,
	}
	if m.Global.WRS != nil {
		properties["wrsPath"] = m.Global.WRS.Path
		properties["wrsRow"] = m.Global.WRS.Row
	}

	feature := geojson.NewFeature(footprint, m.Global.ProductID, properties)
	feature.Bbox = feature.ForceBbox()
	return feature, nil
}
