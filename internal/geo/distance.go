package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// earthRadiusKm is the mean Earth radius used for all distance feedback.
const earthRadiusKm = 6371

// Compass is one of the eight bucketed bearing directions.
type Compass int

const (
	North Compass = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var compassArrows = [...]string{"⬆️", "↗️", "➡️", "↘️", "⬇️", "↙️", "⬅️", "↖️"}

// Arrow returns the glyph shown in radar floating text.
func (c Compass) Arrow() string {
	return compassArrows[c]
}

func (c Compass) String() string {
	return [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}[c]
}

// DistanceKm returns the great-circle distance between two centroids,
// rounded to the nearest kilometre.
func DistanceKm(from, to Coords) int {
	a := s2.LatLngFromDegrees(from.Lat, from.Lng)
	b := s2.LatLngFromDegrees(to.Lat, to.Lng)
	return int(math.Round(a.Distance(b).Radians() * earthRadiusKm))
}

// Bearing returns the initial great-circle bearing from one centroid to
// another, in degrees clockwise from north in [0, 360).
func Bearing(from, to Coords) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// BucketBearing folds a bearing into one of eight 45-degree sectors, each
// centered on its cardinal or intercardinal angle (north owns 337.5 up to
// 22.5).
func BucketBearing(degrees float64) Compass {
	sector := int(math.Floor(math.Mod(degrees+22.5, 360) / 45))
	return Compass(sector)
}
