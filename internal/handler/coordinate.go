package handler

import (
	"fmt"
	"strconv"

	"poi-api/internal/apperr"
	"poi-api/internal/geo"
	"poi-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// parseCoordinate reads the required lat and lng query parameters and rejects
// coordinates outside the valid range before anything is stored.
func parseCoordinate(c *gin.Context) (models.Coordinate, error) {
	var coordinate models.Coordinate
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"lat", &coordinate.Latitude},
		{"lng", &coordinate.Longitude},
	} {
		raw, ok := c.GetQuery(p.name)
		if !ok || raw == "" {
			return coordinate, apperr.InvalidInput("query", fmt.Sprintf("missing required query parameter '%s'", p.name))
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return coordinate, apperr.InvalidInput("query", fmt.Sprintf("query parameter '%s' is not a number", p.name))
		}
		*p.dst = v
	}
	if !geo.ValidCoordinate(coordinate) {
		zerolog.Ctx(c.Request.Context()).Debug().
			Float64("lat", coordinate.Latitude).
			Float64("lng", coordinate.Longitude).
			Msg("coordinate out of range")
		return coordinate, apperr.InvalidInput("query", geo.MessageOutOfRange)
	}
	return coordinate, nil
}
