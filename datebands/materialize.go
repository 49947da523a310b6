package datebands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/envi"
	"github.com/BeamIO-Inc/espa-product-formatter-sub001/metadata"
	"github.com/BeamIO-Inc/espa-product-formatter-sub001/rawbinary"
	"github.com/BeamIO-Inc/espa-product-formatter-sub001/util"
)

// AppVersion is stamped into the app_version of every band this tool
// produces
var AppVersion = "create_date_bands_" + util.ESPACommonVersion

// shortNamePrefixLen is the number of leading characters of the reference
// band's short name carried into each derived band's short name
const shortNamePrefixLen = 4

// productionDateLayout is ISO-8601 with an explicit trailing Z; production
// timestamps are always UTC
const productionDateLayout = "2006-01-02T15:04:05Z"

func truncatedShortName(shortName string) string {
	if len(shortName) > shortNamePrefixLen {
		return shortName[:shortNamePrefixLen]
	}
	return shortName
}

// hdrFileName derives a header file name by replacing the raster file
// name's final three characters (its extension) with "hdr"
func hdrFileName(imgFile string) string {
	return imgFile[:len(imgFile)-3] + "hdr"
}

// BuildBandMeta builds the metadata records for the three derived bands, in
// their fixed output order: combined date, day of year, year. Geometry and
// pixel size are copied from the reference band; the production timestamp is
// taken from now.
func BuildBandMeta(ref *metadata.BandMeta, gmeta *metadata.GlobalMeta, nlines, nsamps int, now time.Time) []metadata.BandMeta {
	prefix := truncatedShortName(ref.ShortName)
	stamp := now.UTC().Format(productionDateLayout)

	bands := []metadata.BandMeta{
		{
			Name:      "combined_date",
			DataType:  metadata.UInt32,
			ShortName: prefix + "DATE",
			LongName:  "doy and year (YEAR * 1000 + DOY)",
			FileName:  gmeta.ProductID + "_date.img",
		},
		{
			Name:       "doy",
			DataType:   metadata.UInt16,
			ShortName:  prefix + "DOY",
			LongName:   "day of year",
			FileName:   gmeta.ProductID + "_doy.img",
			ValidRange: &metadata.ValidRange{Min: 1, Max: 366},
		},
		{
			Name:       "year",
			DataType:   metadata.UInt16,
			ShortName:  prefix + "YEAR",
			LongName:   "year",
			FileName:   gmeta.ProductID + "_year.img",
			ValidRange: &metadata.ValidRange{Min: 1970, Max: 9999},
		},
	}

	for i := range bands {
		b := &bands[i]
		b.Product = "intermediate_data"
		b.Source = "level1"
		b.Category = "image"
		b.NLines = nlines
		b.NSamps = nsamps
		b.PixelSize = ref.PixelSize
		b.ResampleMethod = metadata.NearestNeighbor
		b.DataUnits = "date"
		b.AppVersion = AppVersion
		b.ProductionDate = stamp
	}
	return bands
}

// Materialize writes each derived band's raster file and companion ENVI
// header into the scene directory, then appends the three band records to
// the scene metadata document in one call. The append is not transactional
// across the raster writes: a failure partway through leaves the earlier
// rasters on disk with no metadata entries.
func Materialize(meta *metadata.Metadata, bands *DateBands, xmlFile string) error {
	ref := meta.FindBand(ReferenceBandName)
	if ref == nil {
		return fmt.Errorf("%w: band %q is not in the scene metadata", ErrMissingReferenceBand, ReferenceBandName)
	}

	records := BuildBandMeta(ref, &meta.Global, bands.NLines, bands.NSamps, time.Now())
	sceneDir := filepath.Dir(xmlFile)

	if err := writeBand(&records[0], &meta.Global, sceneDir, bands.NLines, bands.NSamps, bands.Combined); err != nil {
		return err
	}
	bands.Combined = nil
	if err := writeBand(&records[1], &meta.Global, sceneDir, bands.NLines, bands.NSamps, bands.DOY); err != nil {
		return err
	}
	bands.DOY = nil
	if err := writeBand(&records[2], &meta.Global, sceneDir, bands.NLines, bands.NSamps, bands.Year); err != nil {
		return err
	}
	bands.Year = nil

	if err := metadata.AppendBands(records, xmlFile); err != nil {
		return fmt.Errorf("appending date bands to the scene metadata: %v", err)
	}
	meta.Bands = append(meta.Bands, records...)
	return nil
}

// writeBand writes one band's pixel buffer to its raster file and then
// derives and writes the companion ENVI header. The file handle is closed
// as soon as the pixel write completes, error or not.
func writeBand(bmeta *metadata.BandMeta, gmeta *metadata.GlobalMeta, sceneDir string, nlines, nsamps int, buffer interface{}) error {
	imgPath := filepath.Join(sceneDir, bmeta.FileName)
	f, err := rawbinary.OpenWrite(imgPath)
	if err != nil {
		return fmt.Errorf("opening the %s band file: %v", bmeta.Name, err)
	}
	if err := rawbinary.Write(f, nlines, nsamps, buffer); err != nil {
		f.Close()
		return fmt.Errorf("writing the %s band file: %v", bmeta.Name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing the %s band file: %v", bmeta.Name, err)
	}

	hdr, err := envi.NewHeader(bmeta, gmeta)
	if err != nil {
		return fmt.Errorf("building the ENVI header for the %s band: %v", bmeta.Name, err)
	}
	if err := envi.WriteHeader(hdrFileName(imgPath), hdr); err != nil {
		return fmt.Errorf("writing the ENVI header for the %s band: %v", bmeta.Name, err)
	}
	return nil
}
