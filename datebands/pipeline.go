package datebands

import (
	"fmt"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/metadata"
	"github.com/BeamIO-Inc/espa-product-formatter-sub001/util"
)

// Run executes the full date-band pipeline against the scene metadata
// document at xmlFile: validate, parse, synthesize, cross-check geometry,
// materialize. Any failure aborts the run; there is no partial-success
// reporting beyond the returned error.
func Run(xmlFile string) error {
	logCtx := &util.BasicLogContext{}

	if err := metadata.Validate(xmlFile); err != nil {
		return err
	}
	meta, err := metadata.Parse(xmlFile)
	if err != nil {
		return err
	}

	bands, err := Generate(meta)
	if err != nil {
		return err
	}
	util.LogInfo(logCtx, fmt.Sprintf("acquisition date is %s, DOY %d, year %d",
		meta.Global.AcquisitionDate, bands.DOY[0], bands.Year[0]))

	// Re-locate the reference band in the parsed metadata and make sure its
	// geometry still matches what the synthesizer reported, so the output
	// records cannot disagree with the files on disk.
	ref := meta.FindBand(ReferenceBandName)
	if ref == nil {
		return fmt.Errorf("%w: band %q is not in the scene metadata", ErrMissingReferenceBand, ReferenceBandName)
	}
	if ref.NLines != bands.NLines || ref.NSamps != bands.NSamps {
		return fmt.Errorf("%w: reference band is %dx%d but the synthesized bands are %dx%d",
			ErrGeometryMismatch, ref.NLines, ref.NSamps, bands.NLines, bands.NSamps)
	}

	if err := Materialize(meta, bands, xmlFile); err != nil {
		return err
	}
	util.LogInfo(logCtx, "date bands appended to "+xmlFile)
	return nil
}
