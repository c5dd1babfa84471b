// Package geo defines the immutable country catalogue the game plays over:
// country records, the name/alias lookup index, text normalization, and the
// great-circle math used for radar feedback.
package geo

import "encoding/json"

// Region groups countries by continent, matching the restcountries region
// field. A round is played over one region or over the whole world.
type Region string

const (
	RegionAfrica    Region = "Africa"
	RegionAmericas  Region = "Americas"
	RegionAsia      Region = "Asia"
	RegionEurope    Region = "Europe"
	RegionOceania   Region = "Oceania"
	RegionAntarctic Region = "Antarctic"
)

// Coords is a geographic centroid in degrees.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CountryRecord is one playable country. Records are created once at load
// time and never mutated afterwards; the boundary polygon is carried as an
// opaque blob for the rendering client and never inspected here.
type CountryRecord struct {
	ID          string          `json:"id"` // ISO 3166-1 alpha-3 (cca3)
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"` // localized name shown to the player
	Region      Region          `json:"region"`
	Capital     string          `json:"capital"`
	Coords      Coords          `json:"coords"`
	FlagURL     string          `json:"flag"`
	Boundary    json.RawMessage `json:"-"`
}

// Camera is a globe camera position: centroid plus altitude in globe radii.
type Camera struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Altitude float64 `json:"altitude"`
}

// regionCameras holds the preset framing for each selectable pool.
var regionCameras = map[string]Camera{
	"World":    {Lat: 20, Lng: 0, Altitude: 2.5},
	"Europe":   {Lat: 50, Lng: 15, Altitude: 0.7},
	"Asia":     {Lat: 30, Lng: 90, Altitude: 1.6},
	"Africa":   {Lat: 0, Lng: 20, Altitude: 1.6},
	"Americas": {Lat: 15, Lng: -85, Altitude: 1.7},
	"Oceania":  {Lat: -25, Lng: 135, Altitude: 1.3},
}

// RegionCamera returns the camera preset for a region selection, falling
// back to the world view for unknown selections.
func RegionCamera(selection string) Camera {
	if cam, ok := regionCameras[selection]; ok {
		return cam
	}
	return regionCameras["World"]
}
