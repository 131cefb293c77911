package gridconv

// ZoneSpec fixes the scale factor and false easting shared by a family
// of transverse Mercator zones of a given angular width. The central
// meridian varies per zone; the false northing is always zero.
type ZoneSpec struct {
	ScaleFactor  float64
	FalseEasting float64 // meters
}

// Conventional zone families. TWD97 uses the 2 degree parameters with a
// fixed central meridian.
var (
	Zone2Deg = ZoneSpec{ScaleFactor: 0.9999, FalseEasting: 250000.0}
	Zone3Deg = ZoneSpec{ScaleFactor: 1.0, FalseEasting: 350000.0}
	Zone6Deg = ZoneSpec{ScaleFactor: 0.9996, FalseEasting: 500000.0}
)

const twd97CentralMeridian = 121.0

// NewZoneConverter constructs a converter for the zone of the given
// family centered on the given meridian (degrees).
func NewZoneConverter(zone ZoneSpec, centralMeridianDeg float64) *TransverseMercator {
	return NewTransverseMercator(centralMeridianDeg, zone.ScaleFactor, zone.FalseEasting)
}

// NewTWD97 constructs a converter for the Taiwan TWD97 grid.
func NewTWD97() *TransverseMercator {
	return NewZoneConverter(Zone2Deg, twd97CentralMeridian)
}

// ToTWD97 projects a WGS84 longitude/latitude pair in degrees onto the
// TWD97 grid, returning easting and northing in meters.
func ToTWD97(lng, lat float64) (x, y float64) {
	return ForwardTransform(lng, lat, twd97CentralMeridian, Zone2Deg.ScaleFactor, Zone2Deg.FalseEasting)
}

// ToZone2Deg projects a WGS84 longitude/latitude pair onto the 2 degree
// wide zone centered on the given meridian.
func ToZone2Deg(lng, lat, centralMeridianDeg float64) (x, y float64) {
	return ForwardTransform(lng, lat, centralMeridianDeg, Zone2Deg.ScaleFactor, Zone2Deg.FalseEasting)
}

// ToZone3Deg projects a WGS84 longitude/latitude pair onto the 3 degree
// wide zone centered on the given meridian.
func ToZone3Deg(lng, lat, centralMeridianDeg float64) (x, y float64) {
	return ForwardTransform(lng, lat, centralMeridianDeg, Zone3Deg.ScaleFactor, Zone3Deg.FalseEasting)
}

// ToZone6Deg projects a WGS84 longitude/latitude pair onto the 6 degree
// wide (UTM-style) zone centered on the given meridian.
func ToZone6Deg(lng, lat, centralMeridianDeg float64) (x, y float64) {
	return ForwardTransform(lng, lat, centralMeridianDeg, Zone6Deg.ScaleFactor, Zone6Deg.FalseEasting)
}

// Zone2DegToWGS84 converts a 2 degree zone easting/northing pair back
// to a WGS84 longitude/latitude pair in degrees.
func Zone2DegToWGS84(x, y, centralMeridianDeg float64) (lng, lat float64) {
	return InverseTransform(x, y, centralMeridianDeg, Zone2Deg.ScaleFactor, Zone2Deg.FalseEasting)
}

// Zone3DegToWGS84 converts a 3 degree zone easting/northing pair back
// to a WGS84 longitude/latitude pair in degrees.
func Zone3DegToWGS84(x, y, centralMeridianDeg float64) (lng, lat float64) {
	return InverseTransform(x, y, centralMeridianDeg, Zone3Deg.ScaleFactor, Zone3Deg.FalseEasting)
}

// Zone6DegToWGS84 converts a 6 degree zone easting/northing pair back
// to a WGS84 longitude/latitude pair in degrees.
func Zone6DegToWGS84(x, y, centralMeridianDeg float64) (lng, lat float64) {
	return InverseTransform(x, y, centralMeridianDeg, Zone6Deg.ScaleFactor, Zone6Deg.FalseEasting)
}

// LegacyZone2DegToWGS84 reproduces the reference artifact's
// f2degree_zone_to_wgs84, which feeds the planar pair through the
// forward projection instead of the inverse. The result is not a
// geodetic coordinate. It exists only for compatibility with consumers
// of the original library; use Zone2DegToWGS84 for the true inverse.
func LegacyZone2DegToWGS84(x, y, centralMeridianDeg float64) (float64, float64) {
	return ForwardTransform(x, y, centralMeridianDeg, Zone2Deg.ScaleFactor, Zone2Deg.FalseEasting)
}

// LegacyZone3DegToWGS84 reproduces the reference artifact's
// f3degree_zone_to_wgs84. See LegacyZone2DegToWGS84.
func LegacyZone3DegToWGS84(x, y, centralMeridianDeg float64) (float64, float64) {
	return ForwardTransform(x, y, centralMeridianDeg, Zone3Deg.ScaleFactor, Zone3Deg.FalseEasting)
}

// LegacyZone6DegToWGS84 reproduces the reference artifact's
// f6degree_zone_to_wgs84. See LegacyZone2DegToWGS84.
func LegacyZone6DegToWGS84(x, y, centralMeridianDeg float64) (float64, float64) {
	return ForwardTransform(x, y, centralMeridianDeg, Zone6Deg.ScaleFactor, Zone6Deg.FalseEasting)
}

// Zone6FromLongitude returns the standard 6 degree zone number, 1
// through 60, containing the given longitude in degrees.
func Zone6FromLongitude(lng float64) int {
	if lng < 0 {
		lng += 360
	}

	var zone int
	if lng < 180 {
		zone = int(31 + (lng+1.0e-10)/6)
	} else {
		zone = int((lng+1.0e-10)/6 - 29)
	}
	if zone > 60 {
		zone = 1
	}
	return zone
}

// Zone6CentralMeridian returns the central meridian in degrees, in
// (-180, 180], of the given standard 6 degree zone number.
func Zone6CentralMeridian(zone int) float64 {
	return float64(6*zone - 183)
}
