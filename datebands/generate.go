// Package datebands synthesizes per-pixel temporal metadata bands for a
// satellite scene. The scene's acquisition date is converted to a combined
// YEAR*1000+DOY value, a day-of-year value, and a year value, each broadcast
// into a full-resolution raster sized to the scene's reference band, then
// written as raw binary files with ENVI headers and registered in the scene
// metadata document.
package datebands

import (
	"fmt"
	"strconv"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/metadata"
)

// ReferenceBandName is the band whose geometry governs the derived bands
const ReferenceBandName = "b1"

// DateBands holds the three synthesized pixel buffers and the reference
// geometry they were sized to
type DateBands struct {
	Combined []uint32 // YEAR*1000 + DOY per pixel
	DOY      []uint16
	Year     []uint16
	NLines   int
	NSamps   int
}

// Generate derives (year, month, day, DOY) from the scene's acquisition date
// and broadcasts the values into three pixel buffers sized to the reference
// band. The date is scene-level: every pixel of a buffer receives the same
// value. No file I/O happens here.
func Generate(meta *metadata.Metadata) (*DateBands, error) {
	// The acquisition date is assumed to be YYYY-MM-DD...; the components
	// are pulled from fixed offsets and the separators are not inspected.
	acq := meta.Global.AcquisitionDate
	if len(acq) < 10 {
		return nil, fmt.Errorf("%w: acquisition date %q is shorter than YYYY-MM-DD", ErrInvalidDate, acq)
	}

	year, err := strconv.Atoi(acq[0:4])
	if err != nil || year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: year %q from acquisition date should be between 1970 and 9999", ErrInvalidDate, acq[0:4])
	}
	month, err := strconv.Atoi(acq[5:7])
	if err != nil || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %q from acquisition date should be between 1 and 12", ErrInvalidDate, acq[5:7])
	}
	// The day is checked against the absolute bound only; the per-month
	// bound is not enforced on this path.
	day, err := strconv.Atoi(acq[8:10])
	if err != nil || day < 1 || day > 31 {
		return nil, fmt.Errorf("%w: day %q from acquisition date should be between 1 and 31", ErrInvalidDate, acq[8:10])
	}

	ref := meta.FindBand(ReferenceBandName)
	if ref == nil {
		return nil, fmt.Errorf("%w: band %q is not in the scene metadata", ErrMissingReferenceBand, ReferenceBandName)
	}

	doy := DayOfYear(year, month, day)
	if doy < 1 || doy > 366 {
		return nil, fmt.Errorf("%w: DOY %d from acquisition date should be between 1 and 366", ErrInvalidDate, doy)
	}

	if ref.NLines <= 0 || ref.NSamps <= 0 {
		return nil, fmt.Errorf("%w: reference band geometry %dx%d", ErrInvalidInput, ref.NLines, ref.NSamps)
	}

	n := ref.NLines * ref.NSamps
	bands := &DateBands{
		Combined: make([]uint32, n),
		DOY:      make([]uint16, n),
		Year:     make([]uint16, n),
		NLines:   ref.NLines,
		NSamps:   ref.NSamps,
	}
	combined := uint32(year*1000 + doy)
	for i := 0; i < n; i++ {
		bands.Combined[i] = combined
		bands.DOY[i] = uint16(doy)
		bands.Year[i] = uint16(year)
	}
	return bands, nil
}
