// Package gridconv converts coordinates between the WGS84 geodetic
// datum and transverse Mercator grids, including the Taiwan TWD97 grid
// and the conventional 2, 3, and 6 degree wide zone families.
package gridconv

// WGS84 ellipsoid axes in meters. The library is fixed to this datum;
// the axes are design constants, not configuration.
const (
	semiMajorAxis = 6378137.0      // a
	semiMinorAxis = 6356752.314245 // b
)

// DefaultTWD97Converter is the shared converter for the Taiwan TWD97
// grid, central meridian 121 degrees east.
var DefaultTWD97Converter *TransverseMercator

func init() {
	DefaultTWD97Converter = NewTWD97()
}
