package gridconv

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/golang/geo/s2"
)

// GridCoord is a planar projection coordinate with easting and northing
// in meters.
type GridCoord struct {
	Easting  float64
	Northing float64
}

// TransverseMercator provides conversions between WGS84 geodetic
// coordinates (latitude and longitude) and transverse Mercator
// projection coordinates (easting and northing) for a single zone.
//
// Every conversion is total: no call fails or panics. Results are
// finite and approximately correct only within the usual validity range
// of the projection, roughly four degrees of longitude to either side
// of the central meridian at ordinary latitudes. Outside that range the
// truncated series diverges and the returned values are unspecified.
type TransverseMercator struct {
	// Transverse Mercator projection parameters
	tranMercOriginLong   float64 // Longitude of origin in radians
	tranMercFalseEasting float64 // False easting in meters
	tranMercScaleFactor  float64 // Scale factor

	// Ellipsoid-derived values, fixed at construction
	tranMercEps  float64 // Eccentricity
	tranMercEps2 float64 // Second eccentricity squared, e^2/(1-e^2)

	// Coefficients for the meridional arc as a trig series in latitude
	tranMercArcCoeff [5]float64

	// Inverse series values for the footprint latitude
	tranMercMuDenom   float64    // Rectifying radius a*(1 - e^2/4 - 3e^4/64 - 5e^6/256)
	tranMercFootCoeff [4]float64 // Trig series coefficients in Helmert's e1
}

// NewTransverseMercator constructs a converter for the zone with the
// given central meridian in degrees, scale factor, and false easting in
// meters. The ellipsoid is always WGS84 and the false northing is
// always zero.
func NewTransverseMercator(centralMeridianDeg, scaleFactor, falseEasting float64) *TransverseMercator {
	t := &TransverseMercator{
		tranMercOriginLong:   centralMeridianDeg * math.Pi / 180,
		tranMercFalseEasting: falseEasting,
		tranMercScaleFactor:  scaleFactor,
	}
	t.generateCoefficients()
	return t
}

func (t *TransverseMercator) generateCoefficients() {
	// The eccentricities depend only on the shape of the ellipsoid.
	e2 := 1 - (semiMinorAxis*semiMinorAxis)/(semiMajorAxis*semiMajorAxis)
	t.tranMercEps = math.Sqrt(e2)
	t.tranMercEps2 = e2 / (1 - e2)

	// Helmert's n = (a - b)/(a + b)
	n := (semiMajorAxis - semiMinorAxis) / (semiMajorAxis + semiMinorAxis)
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	// Meridional arc length from the equator as a truncated series:
	// S = A*lat - B*sin(2 lat) + C*sin(4 lat) - D*sin(6 lat) + E*sin(8 lat)
	t.tranMercArcCoeff[0] = semiMajorAxis * (1 - n + (5.0/4.0)*(n2-n3) + (81.0/64.0)*(n4-n5))
	t.tranMercArcCoeff[1] = (3 * semiMajorAxis * n / 2) * (1 - n + (7.0/8.0)*(n2-n3) + (55.0/64.0)*(n4-n5))
	t.tranMercArcCoeff[2] = (15 * semiMajorAxis * n2 / 16) * (1 - n + (3.0/4.0)*(n2-n3))
	t.tranMercArcCoeff[3] = (35 * semiMajorAxis * n3 / 48) * (1 - n + (11.0/16.0)*(n2-n3))
	t.tranMercArcCoeff[4] = (315 * semiMajorAxis * n4 / 51) * (1 - n)

	// Rectifying radius for the inverse of the arc series, and the
	// footprint latitude coefficients in e1.
	e4 := e2 * e2
	e6 := e4 * e2
	t.tranMercMuDenom = semiMajorAxis * (1 - e2/4 - 3*e4/64 - 5*e6/256)

	sq := math.Sqrt(1 - e2)
	e1 := (1 - sq) / (1 + sq)
	e1sq := e1 * e1
	t.tranMercFootCoeff[0] = 3*e1/2 - 27*e1*e1sq/32
	t.tranMercFootCoeff[1] = 21*e1sq/16 - 55*e1sq*e1sq/32
	t.tranMercFootCoeff[2] = 151 * e1 * e1sq / 96
	t.tranMercFootCoeff[3] = 1097 * e1sq * e1sq / 512
}

// ConvertFromGeodetic converts a WGS84 geodetic coordinate to
// transverse Mercator projection (easting and northing) coordinates in
// this zone.
func (t *TransverseMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) GridCoord {
	latitude := geodeticCoordinates.Lat.Radians()
	longitude := geodeticCoordinates.Lng.Radians()

	sinPhi := math.Sin(latitude)
	cosPhi := math.Cos(latitude)
	tanPhi := math.Tan(latitude)

	// Angular distance from the central meridian
	p := longitude - t.tranMercOriginLong

	// Radius of curvature in the prime vertical
	nu := semiMajorAxis / math.Sqrt(1-t.tranMercEps*t.tranMercEps*sinPhi*sinPhi)

	// Meridional arc length from the equator
	S := t.tranMercArcCoeff[0]*latitude -
		t.tranMercArcCoeff[1]*math.Sin(2*latitude) +
		t.tranMercArcCoeff[2]*math.Sin(4*latitude) -
		t.tranMercArcCoeff[3]*math.Sin(6*latitude) +
		t.tranMercArcCoeff[4]*math.Sin(8*latitude)

	k0 := t.tranMercScaleFactor
	eps2 := t.tranMercEps2
	cosPhi2 := cosPhi * cosPhi

	// Northing terms
	K1 := S * k0
	K2 := k0 * nu * math.Sin(2*latitude) / 4
	K3 := (k0 * nu * sinPhi * cosPhi * cosPhi2 / 24) *
		(5 - tanPhi*tanPhi + 9*eps2*cosPhi2 + 4*eps2*eps2*cosPhi2*cosPhi2)
	northing := K1 + K2*p*p + K3*p*p*p*p

	// Easting terms
	K4 := k0 * nu * cosPhi
	K5 := (k0 * nu * cosPhi * cosPhi2 / 6) * (1 - tanPhi*tanPhi + eps2*cosPhi2)
	easting := K4*p + K5*p*p*p + t.tranMercFalseEasting

	return GridCoord{
		Easting:  easting,
		Northing: northing,
	}
}

// ConvertToGeodetic converts transverse Mercator projection coordinates
// in this zone back to a WGS84 geodetic coordinate.
func (t *TransverseMercator) ConvertToGeodetic(mapProjectionCoordinates GridCoord) s2.LatLng {
	x := mapProjectionCoordinates.Easting - t.tranMercFalseEasting
	y := mapProjectionCoordinates.Northing // false northing is zero
	k0 := t.tranMercScaleFactor

	// Meridional arc, then the footprint latitude at zero easting offset
	m := y / k0
	mu := m / t.tranMercMuDenom
	fp := mu +
		t.tranMercFootCoeff[0]*math.Sin(2*mu) +
		t.tranMercFootCoeff[1]*math.Sin(4*mu) +
		t.tranMercFootCoeff[2]*math.Sin(6*mu) +
		t.tranMercFootCoeff[3]*math.Sin(8*mu)

	sinFp := math.Sin(fp)
	cosFp := math.Cos(fp)
	tanFp := math.Tan(fp)

	// Second eccentricity squared referenced to the semi-minor axis
	ecc := t.tranMercEps * semiMajorAxis / semiMinorAxis
	eps2 := ecc * ecc
	c1 := eps2 * cosFp * cosFp
	t1 := tanFp * tanFp

	// Radii of curvature at the footprint latitude
	con := 1 - t.tranMercEps*t.tranMercEps*sinFp*sinFp
	r1 := semiMajorAxis * (1 - t.tranMercEps*t.tranMercEps) / (con * math.Sqrt(con))
	n1 := semiMajorAxis / math.Sqrt(con)

	// Normalized easting offset
	d := x / (n1 * k0)
	d2 := d * d

	// Latitude correction
	q1 := n1 * tanFp / r1
	q2 := d2 / 2
	q3 := (5 + 3*t1 + 10*c1 - 4*c1*c1 - 9*eps2) * d2 * d2 / 24
	q4 := (61 + 90*t1 + 298*c1 + 45*t1*t1 - 3*c1*c1 - 252*eps2) * d2 * d2 * d2 / 720
	latitude := fp - q1*(q2-q3+q4)

	// Longitude from the central meridian
	q6 := (1 + 2*t1 + c1) * d2 * d / 6
	q7 := (5 - 2*c1 + 28*t1 - 3*c1*c1 + 8*eps2 + 24*t1*t1) * d2 * d2 * d / 120
	longitude := t.tranMercOriginLong + (d-q6+q7)/cosFp

	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}
}

// ForwardTransform projects a WGS84 longitude/latitude pair in degrees
// onto the transverse Mercator plane defined by the central meridian in
// degrees, scale factor, and false easting in meters. It returns the
// easting x and northing y in meters.
func ForwardTransform(lng, lat, centralMeridianDeg, scaleFactor, falseEasting float64) (x, y float64) {
	grid := NewTransverseMercator(centralMeridianDeg, scaleFactor, falseEasting).
		ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lng))
	return grid.Easting, grid.Northing
}

// InverseTransform converts a transverse Mercator easting/northing pair
// in meters back to a WGS84 longitude/latitude pair in degrees, for the
// plane defined by the central meridian in degrees, scale factor, and
// false easting in meters.
func InverseTransform(x, y, centralMeridianDeg, scaleFactor, falseEasting float64) (lng, lat float64) {
	geo := NewTransverseMercator(centralMeridianDeg, scaleFactor, falseEasting).
		ConvertToGeodetic(GridCoord{Easting: x, Northing: y})
	return geo.Lng.Degrees(), geo.Lat.Degrees()
}
