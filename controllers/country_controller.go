// File: /controllers/country_controller.go
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

type CountryController struct {
	db *gorm.DB
}

func NewCountryController(db *gorm.DB) *CountryController {
	return &CountryController{db: db}
}

type CountryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (cc *CountryController) GetCountries(c *gin.Context) {
	var countries []models.Country
	if err := cc.db.Order("name asc").Find(&countries).Error; err != nil {
		utils.RespondError(c, err, "list countries")
		return
	}

	c.JSON(http.StatusOK, countries)
}

func (cc *CountryController) CreateCountry(c *gin.Context) {
	var req CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	slug := utils.GenerateSlug(name)
	if name == "" || slug == "" {
		utils.SendError(c, http.StatusBadRequest, "Country name must contain at least one letter or digit")
		return
	}

	country := models.Country{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug,
	}

	if err := cc.db.Create(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, cc.conflictMessage(name, slug, ""))
			return
		}
		utils.RespondError(c, err, "create country "+slug)
		return
	}

	c.JSON(http.StatusCreated, country)
}

// UpdateCountry re-derives the slug from the new name; renaming a country
// always changes its public URL.
func (cc *CountryController) UpdateCountry(c *gin.Context) {
	countryID := c.Param("id")

	var country models.Country
	if err := cc.db.First(&country, "id = ?", countryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			utils.RespondError(c, err, "load country "+countryID)
		}
		return
	}

	var req CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	slug := utils.GenerateSlug(name)
	if name == "" || slug == "" {
		utils.SendError(c, http.StatusBadRequest, "Country name must contain at least one letter or digit")
		return
	}

	updates := map[string]interface{}{
		"name": name,
		"slug": slug,
	}
	if err := cc.db.Model(&country).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, cc.conflictMessage(name, slug, country.ID))
			return
		}
		utils.RespondError(c, err, "update country "+countryID)
		return
	}

	country.Name = name
	country.Slug = slug
	c.JSON(http.StatusOK, country)
}

func (cc *CountryController) DeleteCountry(c *gin.Context) {
	countryID := c.Param("id")

	var country models.Country
	if err := cc.db.First(&country, "id = ?", countryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			utils.RespondError(c, err, "load country "+countryID)
		}
		return
	}

	var cityCount int64
	if err := cc.db.Model(&models.City{}).Where("country_id = ?", countryID).Count(&cityCount).Error; err != nil {
		utils.RespondError(c, err, "delete country "+countryID)
		return
	}
	if cityCount > 0 {
		utils.SendError(c, http.StatusConflict, "Country has dependent cities; remove them first")
		return
	}

	if err := cc.db.Delete(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			utils.SendError(c, http.StatusConflict, "Country has dependents; remove them first")
			return
		}
		utils.RespondError(c, err, "delete country "+countryID)
		return
	}

	c.Status(http.StatusNoContent)
}

// conflictMessage names exactly which unique field(s) the rejected write
// collided with, by probing the store after the duplicate-key
// classification. excludeID skips the row being updated.
func (cc *CountryController) conflictMessage(name, slug, excludeID string) string {
	var fields []string

	var n int64
	cc.db.Model(&models.Country{}).Where("name = ? AND id <> ?", name, excludeID).Count(&n)
	if n > 0 {
		fields = append(fields, "name")
	}

	n = 0
	cc.db.Model(&models.Country{}).Where("slug = ? AND id <> ?", slug, excludeID).Count(&n)
	if n > 0 {
		fields = append(fields, "slug")
	}

	if len(fields) == 0 {
		return "Country already exists"
	}
	return "Country with this " + strings.Join(fields, " and ") + " already exists"
}
