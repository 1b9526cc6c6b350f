package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// handleWeather proxies the current weather for the given coordinates.
// GET /api/weather?lat=&lon=
func (s *Server) handleWeather(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		writeBadRequest(c, "Query parameter lat must be a valid number.")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		writeBadRequest(c, "Query parameter lon must be a valid number.")
		return
	}

	weather, err := s.weather.CurrentByCoordinates(c.Request.Context(), lat, lon)
	if err != nil {
		s.logger.Error(c.Request.Context(), "weather lookup failed", "error", err.Error())
		writeUpstreamError(c)
		return
	}

	c.JSON(http.StatusOK, weather)
}

// handleCitySearch proxies the geocoding search.
// GET /api/city/search?q=
func (s *Server) handleCitySearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		writeBadRequest(c, "Query parameter q is required.")
		return
	}

	matches, err := s.weather.SearchCities(c.Request.Context(), query)
	if err != nil {
		s.logger.Error(c.Request.Context(), "city search failed", "error", err.Error())
		writeUpstreamError(c)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// handleCountry proxies the country lookup by alpha code.
// GET /api/country/:code
func (s *Server) handleCountry(c *gin.Context) {
	code := c.Param("code")

	country, err := s.countries.LookupByCode(c.Request.Context(), code)
	if err != nil {
		s.logger.Error(c.Request.Context(), "country lookup failed", "error", err.Error())
		writeUpstreamError(c)
		return
	}

	c.JSON(http.StatusOK, country)
}
