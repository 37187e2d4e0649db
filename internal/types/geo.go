package types

// MapPoint is what the map collaborator consumes: a coordinate pair
// plus the label shown on the marker.
type MapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
}
