// File: /controllers/location_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ou8123/findshuttles-sub001/services"
	"github.com/ou8123/findshuttles-sub001/utils"
)

type LocationController struct {
	locationService *services.LocationService
}

func NewLocationController(locationService *services.LocationService) *LocationController {
	return &LocationController{locationService: locationService}
}

type FindOrCreateRequest struct {
	CityName    string `json:"city_name" binding:"required"`
	CountryName string `json:"country_name" binding:"required"`
}

// FindOrCreateLocation resolves a (city, country) name pair to a city,
// creating either entity when it is not yet known. Used by the route form
// when an admin types a location the catalog has never seen.
func (lc *LocationController) FindOrCreateLocation(c *gin.Context) {
	var req FindOrCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city, err := lc.locationService.ResolveLocation(req.CityName, req.CountryName)
	if err != nil {
		utils.RespondError(c, err, "find-or-create location")
		return
	}

	c.JSON(http.StatusOK, city)
}
