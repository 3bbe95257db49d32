package models

// GeocodeResponse is the reverse geocoding answer for one coordinate, as returned by the Google Geocoding API.
type GeocodeResponse struct {
	PlusCode *PlusCode      `json:"plus_code,omitempty"`
	Results  []GeocodeEntry `json:"results"`
	Status   string         `json:"status"`
}

// FormattedAddresses returns the formatted address of every result, in response order, duplicates included.
func (r *GeocodeResponse) FormattedAddresses() []string {
	if r == nil {
		return []string{}
	}
	addresses := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		addresses = append(addresses, res.FormattedAddress)
	}
	return addresses
}

type PlusCode struct {
	CompoundCode string `json:"compound_code"`
	GlobalCode   string `json:"global_code"`
}

// GeocodeEntry is a single candidate address for the coordinate.
type GeocodeEntry struct {
	AddressComponents []AddressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          Geometry           `json:"geometry"`
	PlaceID           string             `json:"place_id"`
	Types             []string           `json:"types"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type Geometry struct {
	Location     LatLng `json:"location"`
	LocationType string `json:"location_type"` // ROOFTOP, RANGE_INTERPOLATED, GEOMETRIC_CENTER, APPROXIMATE
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeSummary is what the geocoding route returns: the raw response plus its distinct addresses.
type GeocodeSummary struct {
	*GeocodeResponse
	UniqueAddresses []string `json:"unique_addresses"`
}
