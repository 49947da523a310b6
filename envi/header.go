// Package envi builds and writes ENVI header files, the sibling text files
// that describe the geometry, data type, byte order, and map projection of
// each raw binary raster.
package envi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/metadata"
	"github.com/BeamIO-Inc/espa-product-formatter-sub001/rawbinary"
)

// ENVI projection-info codes
const (
	enviAlbersProj = 9
	enviSinProj    = 16
	enviPSProj     = 31
)

// Header holds the information written to one ENVI header file
type Header struct {
	Description     string
	NLines          int
	NSamps          int
	NBands          int
	HeaderOffset    int
	ByteOrder       int
	FileType        string
	DataType        int
	DataIgnoreValue *int64
	Interleave      string
	SensorType      string
	BandNames       []string
	Projection      metadata.Projection
	PixelSize       [2]float64
	ULCorner        [2]float64
	XYStart         [2]int
}

// enviDataType maps an ESPA band data type to the ENVI data type code.
// ENVI has no signed 8-bit type, so INT8 degrades to byte like the upstream
// library does.
func enviDataType(d metadata.DataType) (int, error) {
	switch d {
	case metadata.Int8, metadata.UInt8:
		return 1, nil
	case metadata.Int16:
		return 2, nil
	case metadata.UInt16:
		return 12, nil
	case metadata.Int32:
		return 3, nil
	case metadata.UInt32:
		return 13, nil
	case metadata.Float32:
		return 4, nil
	case metadata.Float64:
		return 5, nil
	}
	return 0, fmt.Errorf("unsupported band data type %q", string(d))
}

// spheroid carries the coordinate-system strings and axes for a datum
type spheroid struct {
	geogcs        string
	datum         string
	name          string
	projDatum     string
	semiMajor     float64
	semiMinor     float64
	invFlattening float64
}

func datumSpheroid(datum string) (spheroid, error) {
	switch datum {
	case "WGS84":
		return spheroid{"GCS_WGS_1984", "D_WGS_1984", "WGS_1984", "WGS-84",
			6378137.0, 6356752.314245179, 298.257223563}, nil
	case "NAD27":
		return spheroid{"GCS_North_American_1927", "D_North_American_1927", "Clarke_1866", "North America 1927",
			6378206.4, 6356583.8, 294.9786982}, nil
	case "NAD83":
		return spheroid{"GCS_North_American_1983", "D_North_American_1983", "GRS_1980", "North America 1983",
			6378137.0, 6356752.314140356, 298.257222101}, nil
	}
	return spheroid{}, fmt.Errorf("unsupported datum %q; WGS84, NAD27, or NAD83 expected", datum)
}

// NewHeader builds the ENVI header record for one band from its band
// metadata and the scene-global metadata. Supports the GEO, UTM, ALBERS,
// PS, and SIN projections of the ESPA format.
func NewHeader(bmeta *metadata.BandMeta, gmeta *metadata.GlobalMeta) (*Header, error) {
	proj := gmeta.Projection
	switch proj.Projection {
	case "GEO", "UTM", "ALBERS", "PS", "SIN":
	default:
		return nil, fmt.Errorf("unsupported projection %q; GEO, UTM, ALBERS, PS, or SIN expected",
			proj.Projection)
	}
	if proj.Projection != "SIN" {
		if _, err := datumSpheroid(proj.Datum); err != nil {
			return nil, err
		}
	}

	dataType, err := enviDataType(bmeta.DataType)
	if err != nil {
		return nil, err
	}

	hdr := &Header{
		Description:  "ESPA-generated file",
		NLines:       bmeta.NLines,
		NSamps:       bmeta.NSamps,
		NBands:       1,
		HeaderOffset: 0,
		ByteOrder:    rawbinary.NativeByteOrder(),
		FileType:     "ENVI Standard",
		DataType:     dataType,
		Interleave:   "BSQ",
		SensorType:   fmt.Sprintf("%s %s", gmeta.Satellite, gmeta.Instrument),
		BandNames:    []string{bmeta.LongName},
		Projection:   proj,
		PixelSize:    [2]float64{bmeta.PixelSize.X, bmeta.PixelSize.Y},
		XYStart:      [2]int{1, 1},
	}

	if bmeta.FillValue != nil {
		fill := *bmeta.FillValue
		hdr.DataIgnoreValue = &fill
	}

	// The UL corner point refers to pixel 1,1. A CENTER grid origin means
	// the stored coordinate is the pixel center, so shift out by half a
	// pixel to get the corner ENVI expects.
	ul := proj.CornerPoint("UL")
	if ul == nil {
		return nil, fmt.Errorf("projection information has no UL corner point")
	}
	if proj.GridOrigin == "CENTER" {
		hdr.ULCorner[0] = ul.X - 0.5*bmeta.PixelSize.X
		hdr.ULCorner[1] = ul.Y + 0.5*bmeta.PixelSize.Y
	} else {
		hdr.ULCorner[0] = ul.X
		hdr.ULCorner[1] = ul.Y
	}

	return hdr, nil
}

// WriteHeader writes the ENVI header to the given path
func WriteHeader(path string, hdr *Header) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf,
		"ENVI\n"+
			"description = {%s}\n"+
			"samples = %d\n"+
			"lines   = %d\n"+
			"bands   = %d\n"+
			"header offset = %d\n"+
			"byte order = %d\n"+
			"file type = %s\n"+
			"data type = %d\n",
		hdr.Description, hdr.NSamps, hdr.NLines, hdr.NBands,
		hdr.HeaderOffset, hdr.ByteOrder, hdr.FileType, hdr.DataType)

	if hdr.DataIgnoreValue != nil {
		fmt.Fprintf(&buf, "data ignore value = %d\n", *hdr.DataIgnoreValue)
	}

	fmt.Fprintf(&buf,
		"interleave = %s\n"+
			"sensor_type = %s\n",
		hdr.Interleave, hdr.SensorType)

	if err := writeProjection(&buf, hdr); err != nil {
		return err
	}

	fmt.Fprintf(&buf, "band names = {%s", hdr.BandNames[0])
	for _, name := range hdr.BandNames[1:] {
		fmt.Fprintf(&buf, ", %s", name)
	}
	fmt.Fprintf(&buf, "}\n")

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing ENVI header file %s: %v", path, err)
	}
	return nil
}

func writeProjection(buf *bytes.Buffer, hdr *Header) error {
	proj := hdr.Projection

	if proj.Projection == "SIN" {
		// Sinusoidal carries no datum, only the sphere radius
		if proj.Sin == nil {
			return fmt.Errorf("SIN projection without sin_proj_params")
		}
		fmt.Fprintf(buf,
			"map info = {Sinusoidal, %d, %d, %f, %f, %g, %g, units=Meters}\n",
			hdr.XYStart[0], hdr.XYStart[1], hdr.ULCorner[0], hdr.ULCorner[1],
			hdr.PixelSize[0], hdr.PixelSize[1])
		fmt.Fprintf(buf,
			"projection info = {%d, %f, %f, %f, %f, Sinusoidal, units=Meters}\n",
			enviSinProj, proj.Sin.SphereRadius, proj.Sin.CentralMeridian,
			proj.Sin.FalseEasting, proj.Sin.FalseNorthing)
		fmt.Fprintf(buf,
			"coordinate system string = {PROJCS[\"Sphere_Sinusoidal\", "+
				"GEOGCS[\"GCS_Sphere\", DATUM[\"D_Sphere\", "+
				"SPHEROID[\"Sphere\",%f,0.0]], "+
				"PRIMEM[\"Greenwich\",0.0], "+
				"UNIT[\"Degree\",0.0174532925199433]], "+
				"PROJECTION[\"Sinusoidal\"], PARAMETER[\"Central_Meridian\",%f], "+
				"PARAMETER[\"False_Easting\",%f], "+
				"PARAMETER[\"False_Northing\",%f], UNIT[\"Meter\",1.0]]}\n",
			proj.Sin.SphereRadius, proj.Sin.CentralMeridian,
			proj.Sin.FalseEasting, proj.Sin.FalseNorthing)
		return nil
	}

	sph, err := datumSpheroid(proj.Datum)
	if err != nil {
		return err
	}

	switch proj.Projection {
	case "GEO":
		fmt.Fprintf(buf,
			"map info = {Geographic Lat/Lon, %d, %d, %f, %f, %g, %g, %s, units=Degrees}\n",
			hdr.XYStart[0], hdr.XYStart[1], hdr.ULCorner[0], hdr.ULCorner[1],
			hdr.PixelSize[0], hdr.PixelSize[1], sph.projDatum)
		fmt.Fprintf(buf,
			"coordinate system string = GEOGCS[\"%s\", DATUM[\"%s\", "+
				"SPHEROID[\"%s\",%.11g,%.12g]], PRIMEM[\"Greenwich\",0.0], "+
				"UNIT[\"Degree\",0.0174532925199433]]\n",
			sph.geogcs, sph.datum, sph.name, sph.semiMajor, sph.invFlattening)

	case "UTM":
		if proj.UTM == nil {
			return fmt.Errorf("UTM projection without utm_proj_params")
		}
		zone := proj.UTM.ZoneCode
		hemisphere := "North"
		falseNorthing := 0.0
		if zone < 0 {
			zone = -zone
			hemisphere = "South"
			falseNorthing = 10000000.0
		}
		centralMeridian := -183.0 + float64(zone)*6
		fmt.Fprintf(buf,
			"map info = {UTM, %d, %d, %f, %f, %g, %g, %d, %s, %s, units=Meters}\n",
			hdr.XYStart[0], hdr.XYStart[1], hdr.ULCorner[0], hdr.ULCorner[1],
			hdr.PixelSize[0], hdr.PixelSize[1], zone, hemisphere, sph.projDatum)
		fmt.Fprintf(buf,
			"coordinate system string = {PROJCS[\"%s_UTM_Zone_%d%s\", "+
				"GEOGCS[\"%s\", DATUM[\"%s\", "+
				"SPHEROID[\"%s\",%.11g,%.12g]], "+
				"PRIMEM[\"Greenwich\",0.0], "+
				"UNIT[\"Degree\",0.0174532925199433]], "+
				"PROJECTION[\"Transverse_Mercator\"], "+
				"PARAMETER[\"False_Easting\",500000.0], "+
				"PARAMETER[\"False_Northing\",%f], "+
				"PARAMETER[\"Central_Meridian\",%f], "+
				"PARAMETER[\"Scale_Factor\",0.9996], "+
				"PARAMETER[\"Latitude_Of_Origin\",0.0], "+
				"UNIT[\"Meter\",1.0]]}\n",
			utmGeogcsPrefix(proj.Datum), zone, hemisphere[:1],
			sph.geogcs, sph.datum, sph.name, sph.semiMajor, sph.invFlattening,
			falseNorthing, centralMeridian)

	case "ALBERS":
		if proj.Albers == nil {
			return fmt.Errorf("ALBERS projection without albers_proj_params")
		}
		a := proj.Albers
		fmt.Fprintf(buf,
			"map info = {Albers Conical Equal Area, %d, %d, %f, %f, %g, %g, %s, units=Meters}\n",
			hdr.XYStart[0], hdr.XYStart[1], hdr.ULCorner[0], hdr.ULCorner[1],
			hdr.PixelSize[0], hdr.PixelSize[1], sph.projDatum)
		fmt.Fprintf(buf,
			"projection info = {%d, %.11g, %.11g, %g, %g, %g, %g, %g, %g, %s, "+
				"Albers Conical Equal Area, units=Meters}\n",
			enviAlbersProj, sph.semiMajor, sph.semiMinor,
			a.OriginLatitude, a.CentralMeridian, a.FalseEasting, a.FalseNorthing,
			a.StandardParallel1, a.StandardParallel2, sph.projDatum)
		fmt.Fprintf(buf,
			"coordinate system string = {PROJCS[\"Albers\",GEOGCS[\"%s\", "+
				"DATUM[\"%s\", SPHEROID[\"%s\",%.11g,%.12g]], "+
				"PRIMEM[\"Greenwich\",0.0], "+
				"UNIT[\"Degree\",0.0174532925199433]], "+
				"PROJECTION[\"Albers\"], PARAMETER[\"False_Easting\",%f], "+
				"PARAMETER[\"False_Northing\",%f], "+
				"PARAMETER[\"Central_Meridian\",%f], "+
				"PARAMETER[\"Standard_Parallel_1\",%f], "+
				"PARAMETER[\"Standard_Parallel_2\",%f], "+
				"PARAMETER[\"Latitude_Of_Origin\",%f], UNIT[\"Meter\",1.0]]}\n",
			sph.geogcs, sph.datum, sph.name, sph.semiMajor, sph.invFlattening,
			a.FalseEasting, a.FalseNorthing, a.CentralMeridian,
			a.StandardParallel1, a.StandardParallel2, a.OriginLatitude)

	case "PS":
		if proj.PS == nil {
			return fmt.Errorf("PS projection without ps_proj_params")
		}
		p := proj.PS
		fmt.Fprintf(buf,
			"map info = {Polar Stereographic, %d, %d, %f, %f, %g, %g, %s, units=Meters}\n",
			hdr.XYStart[0], hdr.XYStart[1], hdr.ULCorner[0], hdr.ULCorner[1],
			hdr.PixelSize[0], hdr.PixelSize[1], sph.projDatum)
		fmt.Fprintf(buf,
			"projection info = {%d, %.11g, %.11g, %g, %g, %g, %g, %s, "+
				"Polar Stereographic, units=Meters}\n",
			enviPSProj, sph.semiMajor, sph.semiMinor,
			p.LatitudeTrueScale, p.LongitudePole, p.FalseEasting, p.FalseNorthing,
			sph.projDatum)
		fmt.Fprintf(buf,
			"coordinate system string = {PROJCS[\"Stereographic_South_Pole\", "+
				"GEOGCS[\"%s\", DATUM[\"%s\", SPHEROID[\"%s\",%.11g,%.12g]], "+
				"PRIMEM[\"Greenwich\",0.0], UNIT[\"Degree\",0.0174532925199433]], "+
				"PROJECTION[\"Stereographic_South_Pole\"], "+
				"PARAMETER[\"False_Easting\",%f], "+
				"PARAMETER[\"False_Northing\",%f], "+
				"PARAMETER[\"Central_Meridian\",%f], "+
				"PARAMETER[\"Standard_Parallel_1\",%f], "+
				"UNIT[\"Meter\",1.0]]}\n",
			sph.geogcs, sph.datum, sph.name, sph.semiMajor, sph.invFlattening,
			p.FalseEasting, p.FalseNorthing, p.LongitudePole, p.LatitudeTrueScale)
	}

	return nil
}

func utmGeogcsPrefix(datum string) string {
	switch datum {
	case "WGS84":
		return "WGS_1984"
	case "NAD27":
		return "NAD_1927"
	case "NAD83":
		return "NAD_1983"
	}
	return datum
}
