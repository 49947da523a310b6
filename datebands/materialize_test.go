package datebands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/metadata"
)

func TestBuildBandMeta(t *testing.T) {
	meta := newSceneMeta("2013-10-14", 100, 100)
	ref := meta.FindBand(ReferenceBandName)
	require.NotNil(t, ref)

	now := time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)
	records := BuildBandMeta(ref, &meta.Global, 100, 100, now)
	require.Len(t, records, 3)

	date, doy, year := records[0], records[1], records[2]

	assert.Equal(t, "combined_date", date.Name)
	assert.Equal(t, metadata.UInt32, date.DataType)
	assert.Equal(t, "LC08DATE", date.ShortName)
	assert.Equal(t, "doy and year (YEAR * 1000 + DOY)", date.LongName)
	assert.Equal(t, "LC08_L1TP_047027_20131014_20170308_01_T1_date.img", date.FileName)
	assert.Nil(t, date.ValidRange)

	assert.Equal(t, "doy", doy.Name)
	assert.Equal(t, metadata.UInt16, doy.DataType)
	assert.Equal(t, "LC08DOY", doy.ShortName)
	assert.Equal(t, "day of year", doy.LongName)
	assert.Equal(t, "LC08_L1TP_047027_20131014_20170308_01_T1_doy.img", doy.FileName)
	require.NotNil(t, doy.ValidRange)
	assert.Equal(t, float64(1), doy.ValidRange.Min)
	assert.Equal(t, float64(366), doy.ValidRange.Max)

	assert.Equal(t, "year", year.Name)
	assert.Equal(t, metadata.UInt16, year.DataType)
	assert.Equal(t, "LC08YEAR", year.ShortName)
	assert.Equal(t, "year", year.LongName)
	assert.Equal(t, "LC08_L1TP_047027_20131014_20170308_01_T1_year.img", year.FileName)
	require.NotNil(t, year.ValidRange)
	assert.Equal(t, float64(1970), year.ValidRange.Min)
	assert.Equal(t, float64(9999), year.ValidRange.Max)

	for _, rec := range records {
		assert.Equal(t, "intermediate_data", rec.Product)
		assert.Equal(t, "level1", rec.Source)
		assert.Equal(t, "image", rec.Category)
		assert.Equal(t, 100, rec.NLines)
		assert.Equal(t, 100, rec.NSamps)
		assert.Equal(t, ref.PixelSize, rec.PixelSize)
		assert.Equal(t, metadata.NearestNeighbor, rec.ResampleMethod)
		assert.Equal(t, "date", rec.DataUnits)
		assert.Equal(t, "create_date_bands_1.14.0", rec.AppVersion)
		assert.Equal(t, "2026-08-30T12:34:56Z", rec.ProductionDate)
	}
}

func TestTruncatedShortName(t *testing.T) {
	assert.Equal(t, "LC08", truncatedShortName("LC08L1TP"))
	assert.Equal(t, "LT5", truncatedShortName("LT5"))
	assert.Equal(t, "LE07", truncatedShortName("LE07"))
}

func TestHdrFileName(t *testing.T) {
	assert.Equal(t, "scene_doy.hdr", hdrFileName("scene_doy.img"))
	assert.Equal(t, "/tmp/scene_date.hdr", hdrFileName("/tmp/scene_date.img"))
}
