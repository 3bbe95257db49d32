// Package geo holds the pure helpers applied around geocoding.
package geo

import "poi-api/internal/models"

// MessageOutOfRange is reported to callers for a coordinate failing ValidCoordinate.
const MessageOutOfRange = "coordinate out of range"

// ValidCoordinate reports whether c lies within [-90, 90] latitude and [-180, 180] longitude.
func ValidCoordinate(c models.Coordinate) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// UniqueAddresses keeps the first occurrence of every address, in input order.
// Addresses are compared as exact strings; no case or whitespace normalization.
func UniqueAddresses(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	unique := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		unique = append(unique, a)
	}
	return unique
}
