// File: /controllers/amenity_controller.go
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

type AmenityController struct {
	db *gorm.DB
}

func NewAmenityController(db *gorm.DB) *AmenityController {
	return &AmenityController{db: db}
}

type AmenityRequest struct {
	Name string `json:"name" binding:"required"`
}

func (ac *AmenityController) GetAmenities(c *gin.Context) {
	var amenities []models.Amenity
	if err := ac.db.Order("name asc").Find(&amenities).Error; err != nil {
		utils.RespondError(c, err, "list amenities")
		return
	}

	c.JSON(http.StatusOK, amenities)
}

func (ac *AmenityController) CreateAmenity(c *gin.Context) {
	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.SendError(c, http.StatusBadRequest, "Amenity name is required")
		return
	}

	amenity := models.Amenity{
		ID:   uuid.New().String(),
		Name: name,
	}

	if err := ac.db.Create(&amenity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, "Amenity with this name already exists")
			return
		}
		utils.RespondError(c, err, "create amenity "+name)
		return
	}

	c.JSON(http.StatusCreated, amenity)
}

func (ac *AmenityController) UpdateAmenity(c *gin.Context) {
	amenityID := c.Param("id")

	var amenity models.Amenity
	if err := ac.db.First(&amenity, "id = ?", amenityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Amenity not found"})
		} else {
			utils.RespondError(c, err, "load amenity "+amenityID)
		}
		return
	}

	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.SendError(c, http.StatusBadRequest, "Amenity name is required")
		return
	}

	if err := ac.db.Model(&amenity).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, "Amenity with this name already exists")
			return
		}
		utils.RespondError(c, err, "update amenity "+amenityID)
		return
	}

	amenity.Name = name
	c.JSON(http.StatusOK, amenity)
}

// DeleteAmenity detaches the amenity from every route before deleting it;
// routes themselves are unaffected.
func (ac *AmenityController) DeleteAmenity(c *gin.Context) {
	amenityID := c.Param("id")

	var amenity models.Amenity
	if err := ac.db.First(&amenity, "id = ?", amenityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Amenity not found"})
		} else {
			utils.RespondError(c, err, "load amenity "+amenityID)
		}
		return
	}

	err := ac.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM route_amenities WHERE amenity_id = ?", amenityID).Error; err != nil {
			return err
		}
		return tx.Delete(&amenity).Error
	})
	if err != nil {
		utils.RespondError(c, err, "delete amenity "+amenityID)
		return
	}

	c.Status(http.StatusNoContent)
}
