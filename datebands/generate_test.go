package datebands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/metadata"
)

func newSceneMeta(acquisitionDate string, nlines, nsamps int) *metadata.Metadata {
	return &metadata.Metadata{
		Version: metadata.SchemaVersion,
		Global: metadata.GlobalMeta{
			Satellite:       "LANDSAT_8",
			Instrument:      "OLI_TIRS",
			AcquisitionDate: acquisitionDate,
			ProductID:       "LC08_L1TP_047027_20131014_20170308_01_T1",
			Projection: metadata.Projection{
				Projection: "UTM",
				Datum:      "WGS84",
				Units:      "meters",
				CornerPoints: []metadata.CornerPoint{
					{Location: "UL", X: 417285.0, Y: 5283615.0},
					{Location: "LR", X: 661215.0, Y: 5043585.0},
				},
				GridOrigin: "CENTER",
				UTM:        &metadata.UTMParams{ZoneCode: 10},
			},
		},
		Bands: []metadata.BandMeta{
			{
				Product:   "L1TP",
				Name:      ReferenceBandName,
				Category:  "image",
				DataType:  metadata.UInt16,
				NLines:    nlines,
				NSamps:    nsamps,
				ShortName: "LC08L1TP",
				LongName:  "band 1 digital numbers",
				FileName:  "LC08_L1TP_047027_20131014_20170308_01_T1_b1.img",
				PixelSize: metadata.PixelSize{X: 30, Y: 30, Units: "meters"},
			},
		},
	}
}

func TestGenerate_BroadcastsSceneDate(t *testing.T) {
	meta := newSceneMeta("2013-10-14", 100, 100)

	bands, err := Generate(meta)
	require.NoError(t, err)

	assert.Equal(t, 100, bands.NLines)
	assert.Equal(t, 100, bands.NSamps)
	require.Len(t, bands.Combined, 10000)
	require.Len(t, bands.DOY, 10000)
	require.Len(t, bands.Year, 10000)

	for i, v := range bands.Combined {
		require.Equal(t, uint32(2013287), v, "combined pixel %d", i)
	}
	for i, v := range bands.DOY {
		require.Equal(t, uint16(287), v, "doy pixel %d", i)
	}
	for i, v := range bands.Year {
		require.Equal(t, uint16(2013), v, "year pixel %d", i)
	}
}

func TestGenerate_LeapDay(t *testing.T) {
	bands, err := Generate(newSceneMeta("2016-02-29", 2, 3))
	require.NoError(t, err)
	assert.Equal(t, uint32(2016060), bands.Combined[0])
	assert.Equal(t, uint16(60), bands.DOY[0])
}

func TestGenerate_IgnoresTimeSuffix(t *testing.T) {
	bands, err := Generate(newSceneMeta("2013-10-14T18:46:00Z", 2, 2))
	require.NoError(t, err)
	assert.Equal(t, uint16(287), bands.DOY[0])
}

func TestGenerate_DayBoundIsAbsolute(t *testing.T) {
	// The day is checked against 31 only, so February 31st gets through and
	// lands on DOY 62.
	bands, err := Generate(newSceneMeta("2016-02-31", 2, 2))
	require.NoError(t, err)
	assert.Equal(t, uint16(62), bands.DOY[0])
	assert.Equal(t, uint32(2016062), bands.Combined[0])
}

func TestGenerate_RejectsBadDates(t *testing.T) {
	cases := []struct {
		name string
		acq  string
	}{
		{"too short", "2013-10"},
		{"empty", ""},
		{"year too early", "1969-12-31"},
		{"year not a number", "20x3-10-14"},
		{"month zero", "2013-00-14"},
		{"month thirteen", "2013-13-14"},
		{"day zero", "2013-10-00"},
		{"day over thirty-one", "2013-10-32"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Generate(newSceneMeta(c.acq, 2, 2))
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestGenerate_MissingReferenceBand(t *testing.T) {
	meta := newSceneMeta("2013-10-14", 2, 2)
	meta.Bands[0].Name = "b2"
	_, err := Generate(meta)
	assert.ErrorIs(t, err, ErrMissingReferenceBand)
}

func TestGenerate_RejectsEmptyGeometry(t *testing.T) {
	_, err := Generate(newSceneMeta("2013-10-14", 0, 100))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Generate(newSceneMeta("2013-10-14", 100, 0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
