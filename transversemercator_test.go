package gridconv_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/twgeo/gridconv"
)

// 1e-6 degrees in radians, roughly 10 cm on the ground.
const roundTripTolerance = 1e-6 * math.Pi / 180

func TestTransverseMercatorRoundTrip(t *testing.T) {
	zones := []struct {
		name      string
		spec      gridconv.ZoneSpec
		halfWidth float64
	}{
		{"2deg", gridconv.Zone2Deg, 1.0},
		{"3deg", gridconv.Zone3Deg, 1.5},
		{"6deg", gridconv.Zone6Deg, 3.0},
	}
	meridians := []float64{-75.0, 0.0, 121.0}

	for _, zone := range zones {
		for _, meridian := range meridians {
			conv := gridconv.NewZoneConverter(zone.spec, meridian)
			lngInc := zone.halfWidth / 4
			for lat := -75.0; lat <= 75.0; lat += 2.5 {
				for dLng := -zone.halfWidth; dLng <= zone.halfWidth; dLng += lngInc {
					geo := s2.LatLngFromDegrees(lat, meridian+dLng)
					geo2 := conv.ConvertToGeodetic(conv.ConvertFromGeodetic(geo))
					if geo.Distance(geo2) > roundTripTolerance {
						t.Fatalf("%s zone at %v: round trip expected %s, got %s", zone.name, meridian, geo, geo2)
					}
				}
			}
		}
	}
}

func TestCentralMeridianFixedPoint(t *testing.T) {
	for _, spec := range []gridconv.ZoneSpec{gridconv.Zone2Deg, gridconv.Zone3Deg, gridconv.Zone6Deg} {
		x, y := gridconv.ForwardTransform(121.0, 0, 121.0, spec.ScaleFactor, spec.FalseEasting)
		assert.InDelta(t, spec.FalseEasting, x, 1e-6, "equator point on the central meridian maps to the false easting")
		assert.InDelta(t, 0, y, 1e-9, "northing is zero at the equator")
	}
}

func TestEastingMonotonicInLongitude(t *testing.T) {
	conv := gridconv.NewTWD97()
	prev := conv.ConvertFromGeodetic(s2.LatLngFromDegrees(23.5, 121.0))
	for lng := 121.1; lng <= 123.0; lng += 0.1 {
		cur := conv.ConvertFromGeodetic(s2.LatLngFromDegrees(23.5, lng))
		if cur.Easting <= prev.Easting {
			t.Fatalf("easting not increasing at lng %v: %v <= %v", lng, cur.Easting, prev.Easting)
		}
		prev = cur
	}
}

func TestNorthingMonotonicInLatitude(t *testing.T) {
	conv := gridconv.NewTWD97()
	prev := conv.ConvertFromGeodetic(s2.LatLngFromDegrees(21.0, 120.5))
	for lat := 21.1; lat <= 26.0; lat += 0.1 {
		cur := conv.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, 120.5))
		if cur.Northing <= prev.Northing {
			t.Fatalf("northing not increasing at lat %v: %v <= %v", lat, cur.Northing, prev.Northing)
		}
		prev = cur
	}
}

func TestHemisphereSymmetry(t *testing.T) {
	conv := gridconv.NewZoneConverter(gridconv.Zone6Deg, 15.0)
	for lat := 0.5; lat <= 70.0; lat += 3.5 {
		north := conv.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, 16.2))
		south := conv.ConvertFromGeodetic(s2.LatLngFromDegrees(-lat, 16.2))
		assert.InDelta(t, north.Northing, -south.Northing, 1e-8, "northing is antisymmetric across the equator")
		assert.InDelta(t, north.Easting, south.Easting, 1e-8, "easting is even in latitude")
	}
}

func TestTWD97WorkedExample(t *testing.T) {
	// Checkerboard Mountain trig point, the worked example from the
	// TWD97 reference documentation.
	x, y := gridconv.ToTWD97(120.982025, 23.973875)
	assert.InDelta(t, 248170.8, x, 1.0)
	assert.InDelta(t, 2652130.0, y, 1.0)

	lng, lat := gridconv.InverseTransform(x, y, 121.0, 0.9999, 250000.0)
	assert.InDelta(t, 120.982025, lng, 1e-6)
	assert.InDelta(t, 23.973875, lat, 1e-6)
}

func TestDefaultTWD97Converter(t *testing.T) {
	grid := gridconv.DefaultTWD97Converter.ConvertFromGeodetic(s2.LatLngFromDegrees(23.973875, 120.982025))
	x, y := gridconv.ToTWD97(120.982025, 23.973875)
	assert.Equal(t, x, grid.Easting)
	assert.Equal(t, y, grid.Northing)
}
