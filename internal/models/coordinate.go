package models

// Coordinate is a GPS position in decimal degrees, bound from the lat/lng query parameters.
type Coordinate struct {
	Latitude  float64 `json:"lat" form:"lat"`
	Longitude float64 `json:"lng" form:"lng"`
}
