// Package metadata models the ESPA internal metadata format (v2.0) and
// provides parse, validate, write, and band-append operations against the
// scene XML document. Only the subset of the schema touched by the band
// generation tools is modeled; unrecognized elements are ignored on parse.
package metadata

import "encoding/xml"

// Schema identifiers for the ESPA internal metadata format
const (
	SchemaVersion  = "2.0"
	Namespace      = "http://espa.cr.usgs.gov/v2"
	SchemaLocation = "http://espa.cr.usgs.gov/v2"
	SchemaURI      = "http://espa.cr.usgs.gov/schema/espa_internal_metadata_v2_0.xsd"
)

// DataType is an enum type for the pixel element types a band may carry
type DataType string

// Recognized band data types
const (
	Int8    DataType = "INT8"
	UInt8   DataType = "UINT8"
	Int16   DataType = "INT16"
	UInt16  DataType = "UINT16"
	Int32   DataType = "INT32"
	UInt32  DataType = "UINT32"
	Float32 DataType = "FLOAT32"
	Float64 DataType = "FLOAT64"
)

// Size returns the width of one element of this type in bytes, or 0 for an
// unrecognized type
func (d DataType) Size() int {
	switch d {
	case Int8, UInt8:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32, Float32:
		return 4
	case Float64:
		return 8
	}
	return 0
}

// ResampleMethod is an enum type for the resampling applied to a band
type ResampleMethod string

// Recognized resampling methods
const (
	CubicConvolution ResampleMethod = "cubic convolution"
	NearestNeighbor  ResampleMethod = "nearest neighbor"
	Bilinear         ResampleMethod = "bilinear"
	NoResample       ResampleMethod = "none"
)

// Metadata is one parsed ESPA scene metadata document: scene-global
// attributes plus the ordered collection of band metadata records
type Metadata struct {
	XMLName xml.Name   `xml:"espa_metadata"`
	Version string     `xml:"version,attr"`
	Global  GlobalMeta `xml:"global_metadata"`
	Bands   []BandMeta `xml:"bands>band"`
}

// FindBand returns the band with the given name, or nil if absent
func (m *Metadata) FindBand(name string) *BandMeta {
	for i := range m.Bands {
		if m.Bands[i].Name == name {
			return &m.Bands[i]
		}
	}
	return nil
}

// GlobalMeta holds the scene-global metadata
type GlobalMeta struct {
	DataProvider         string         `xml:"data_provider"`
	Satellite            string         `xml:"satellite"`
	Instrument           string         `xml:"instrument"`
	AcquisitionDate      string         `xml:"acquisition_date"`
	SceneCenterTime      string         `xml:"scene_center_time,omitempty"`
	Level1ProductionDate string         `xml:"level1_production_date,omitempty"`
	SolarAngles          *Angles        `xml:"solar_angles"`
	ViewAngles           *Angles        `xml:"view_angles"`
	EarthSunDistance     float64        `xml:"earth_sun_distance,omitempty"`
	WRS                  *WRS           `xml:"wrs"`
	ProductID            string         `xml:"product_id"`
	LPGSMetadataFile     string         `xml:"lpgs_metadata_file,omitempty"`
	Corners              []Corner       `xml:"corner"`
	BoundingCoords       BoundingCoords `xml:"bounding_coordinates"`
	Projection           Projection     `xml:"projection_information"`
	OrientationAngle     float64        `xml:"orientation_angle"`
}

// Angles holds a zenith/azimuth angle pair
type Angles struct {
	Zenith  float64 `xml:"zenith,attr"`
	Azimuth float64 `xml:"azimuth,attr"`
	Units   string  `xml:"units,attr"`
}

// WRS identifies the scene in the Worldwide Reference System
type WRS struct {
	System int `xml:"system,attr"`
	Path   int `xml:"path,attr"`
	Row    int `xml:"row,attr"`
}

// Corner is a geographic scene corner ("UL" or "LR")
type Corner struct {
	Location  string  `xml:"location,attr"`
	Latitude  float64 `xml:"latitude,attr"`
	Longitude float64 `xml:"longitude,attr"`
}

// BoundingCoords is the geographic bounding box of the scene
type BoundingCoords struct {
	West  float64 `xml:"west"`
	East  float64 `xml:"east"`
	North float64 `xml:"north"`
	South float64 `xml:"south"`
}

// Projection holds the map projection information for the scene. Exactly one
// of the projection-specific parameter blocks is present, matching the
// projection attribute (GEO carries none).
type Projection struct {
	Projection   string        `xml:"projection,attr"`
	Datum        string        `xml:"datum,attr,omitempty"`
	Units        string        `xml:"units,attr"`
	CornerPoints []CornerPoint `xml:"corner_point"`
	GridOrigin   string        `xml:"grid_origin"`
	UTM          *UTMParams    `xml:"utm_proj_params"`
	Albers       *AlbersParams `xml:"albers_proj_params"`
	PS           *PSParams     `xml:"ps_proj_params"`
	Sin          *SinParams    `xml:"sin_proj_params"`
}

// CornerPoint returns the projection corner point at the given location
// ("UL" or "LR"), or nil if absent
func (p *Projection) CornerPoint(location string) *CornerPoint {
	for i := range p.CornerPoints {
		if p.CornerPoints[i].Location == location {
			return &p.CornerPoints[i]
		}
	}
	return nil
}

// CornerPoint is a projection-space scene corner
type CornerPoint struct {
	Location string  `xml:"location,attr"`
	X        float64 `xml:"x,attr"`
	Y        float64 `xml:"y,attr"`
}

// UTMParams holds the UTM projection parameters; the zone code is negative
// for southern-hemisphere zones
type UTMParams struct {
	ZoneCode int `xml:"zone_code"`
}

// AlbersParams holds the Albers Conical Equal Area projection parameters
type AlbersParams struct {
	StandardParallel1 float64 `xml:"standard_parallel1"`
	StandardParallel2 float64 `xml:"standard_parallel2"`
	CentralMeridian   float64 `xml:"central_meridian"`
	OriginLatitude    float64 `xml:"origin_latitude"`
	FalseEasting      float64 `xml:"false_easting"`
	FalseNorthing     float64 `xml:"false_northing"`
}

// PSParams holds the Polar Stereographic projection parameters
type PSParams struct {
	LongitudePole     float64 `xml:"longitude_pole"`
	LatitudeTrueScale float64 `xml:"latitude_true_scale"`
	FalseEasting      float64 `xml:"false_easting"`
	FalseNorthing     float64 `xml:"false_northing"`
}

// SinParams holds the Sinusoidal projection parameters
type SinParams struct {
	SphereRadius    float64 `xml:"sphere_radius"`
	CentralMeridian float64 `xml:"central_meridian"`
	FalseEasting    float64 `xml:"false_easting"`
	FalseNorthing   float64 `xml:"false_northing"`
}

// BandMeta is the metadata record for one raster band. Optional fields are
// pointers and are omitted from the document when nil, rather than carrying
// the fill sentinels the C library used.
type BandMeta struct {
	XMLName        xml.Name       `xml:"band"`
	Product        string         `xml:"product,attr"`
	Source         string         `xml:"source,attr,omitempty"`
	Name           string         `xml:"name,attr"`
	Category       string         `xml:"category,attr"`
	DataType       DataType       `xml:"data_type,attr"`
	NLines         int            `xml:"nlines,attr"`
	NSamps         int            `xml:"nsamps,attr"`
	FillValue      *int64         `xml:"fill_value,attr"`
	SaturateValue  *int           `xml:"saturate_value,attr"`
	ScaleFactor    *float64       `xml:"scale_factor,attr"`
	AddOffset      *float64       `xml:"add_offset,attr"`
	ShortName      string         `xml:"short_name"`
	LongName       string         `xml:"long_name"`
	FileName       string         `xml:"file_name"`
	PixelSize      PixelSize      `xml:"pixel_size"`
	ResampleMethod ResampleMethod `xml:"resample_method"`
	DataUnits      string         `xml:"data_units,omitempty"`
	ValidRange     *ValidRange    `xml:"valid_range"`
	AppVersion     string         `xml:"app_version,omitempty"`
	ProductionDate string         `xml:"production_date,omitempty"`
}

// PixelSize is the ground size of one pixel
type PixelSize struct {
	X     float64 `xml:"x,attr"`
	Y     float64 `xml:"y,attr"`
	Units string  `xml:"units,attr"`
}

// ValidRange is the closed interval of meaningful values for a band
type ValidRange struct {
	Min float64 `xml:"min,attr"`
	Max float64 `xml:"max,attr"`
}
