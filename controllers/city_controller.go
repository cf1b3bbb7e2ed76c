// File: /controllers/city_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ou8123/findshuttles-sub001/models"
	"github.com/ou8123/findshuttles-sub001/utils"
)

type CityController struct {
	db *gorm.DB
}

func NewCityController(db *gorm.DB) *CityController {
	return &CityController{db: db}
}

type CityRequest struct {
	Name      string   `json:"name" binding:"required"`
	CountryID string   `json:"country_id" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (cc *CityController) GetCities(c *gin.Context) {
	query := cc.db.Preload("Country").Order("name asc")

	if countryID := c.Query("countryId"); countryID != "" {
		query = query.Where("country_id = ?", countryID)
	}

	var cities []models.City
	if err := query.Find(&cities).Error; err != nil {
		utils.RespondError(c, err, "list cities")
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (cc *CityController) CreateCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	slug := utils.GenerateSlug(name)
	if name == "" || slug == "" {
		utils.SendError(c, http.StatusBadRequest, "City name must contain at least one letter or digit")
		return
	}

	if req.Latitude != nil && !isValidLatitude(*req.Latitude) {
		utils.SendError(c, http.StatusBadRequest, "Latitude must be between -90 and 90")
		return
	}
	if req.Longitude != nil && !isValidLongitude(*req.Longitude) {
		utils.SendError(c, http.StatusBadRequest, "Longitude must be between -180 and 180")
		return
	}

	var country models.Country
	if err := cc.db.First(&country, "id = ?", req.CountryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusBadRequest, "Country does not exist")
		} else {
			utils.RespondError(c, err, "load country "+req.CountryID)
		}
		return
	}

	city := models.City{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug,
		CountryID: country.ID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := cc.db.Create(&city).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, "City with this name already exists in this country")
			return
		}
		utils.RespondError(c, err, "create city "+slug)
		return
	}

	city.Country = country
	c.JSON(http.StatusCreated, city)
}

// UpdateCity re-derives the slug from the new name. Moving a city to a
// different country re-syncs the denormalized country columns on every
// route referencing it, in the same transaction, so routes never disagree
// with their cities' actual country.
func (cc *CityController) UpdateCity(c *gin.Context) {
	cityID := c.Param("id")

	var city models.City
	if err := cc.db.First(&city, "id = ?", cityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		} else {
			utils.RespondError(c, err, "load city "+cityID)
		}
		return
	}

	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	slug := utils.GenerateSlug(name)
	if name == "" || slug == "" {
		utils.SendError(c, http.StatusBadRequest, "City name must contain at least one letter or digit")
		return
	}

	if req.Latitude != nil && !isValidLatitude(*req.Latitude) {
		utils.SendError(c, http.StatusBadRequest, "Latitude must be between -90 and 90")
		return
	}
	if req.Longitude != nil && !isValidLongitude(*req.Longitude) {
		utils.SendError(c, http.StatusBadRequest, "Longitude must be between -180 and 180")
		return
	}

	var country models.Country
	if err := cc.db.First(&country, "id = ?", req.CountryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusBadRequest, "Country does not exist")
		} else {
			utils.RespondError(c, err, "load country "+req.CountryID)
		}
		return
	}

	err := cc.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":       name,
			"slug":       slug,
			"country_id": country.ID,
			"latitude":   req.Latitude,
			"longitude":  req.Longitude,
		}
		if err := tx.Model(&city).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Route{}).
			Where("departure_city_id = ?", city.ID).
			Update("departure_country_id", country.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Route{}).
			Where("destination_city_id = ?", city.ID).
			Update("destination_country_id", country.ID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, "City with this name already exists in this country")
			return
		}
		utils.RespondError(c, err, "update city "+cityID)
		return
	}

	city.Name = name
	city.Slug = slug
	city.CountryID = country.ID
	city.Latitude = req.Latitude
	city.Longitude = req.Longitude
	city.Country = country
	c.JSON(http.StatusOK, city)
}

func (cc *CityController) DeleteCity(c *gin.Context) {
	cityID := c.Param("id")

	var city models.City
	if err := cc.db.First(&city, "id = ?", cityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		} else {
			utils.RespondError(c, err, "load city "+cityID)
		}
		return
	}

	var routeCount int64
	err := cc.db.Model(&models.Route{}).
		Where("departure_city_id = ? OR destination_city_id = ?", cityID, cityID).
		Count(&routeCount).Error
	if err != nil {
		utils.RespondError(c, err, "delete city "+cityID)
		return
	}
	if routeCount > 0 {
		utils.SendError(c, http.StatusConflict, "City has dependent routes; remove them first")
		return
	}

	if err := cc.db.Delete(&city).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			utils.SendError(c, http.StatusConflict, "City has dependents; remove them first")
			return
		}
		utils.RespondError(c, err, "delete city "+cityID)
		return
	}

	c.Status(http.StatusNoContent)
}

func isValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
