// File: /controllers/hotel_controller.go
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

type HotelController struct {
	db *gorm.DB
}

func NewHotelController(db *gorm.DB) *HotelController {
	return &HotelController{db: db}
}

type HotelRequest struct {
	Name string `json:"name" binding:"required"`
}

func (hc *HotelController) GetHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := hc.db.Order("name asc").Find(&hotels).Error; err != nil {
		utils.RespondError(c, err, "list hotels")
		return
	}

	c.JSON(http.StatusOK, hotels)
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.SendError(c, http.StatusBadRequest, "Hotel name is required")
		return
	}

	hotel := models.Hotel{
		ID:   uuid.New().String(),
		Name: name,
	}

	if err := hc.db.Create(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, "Hotel with this name already exists")
			return
		}
		utils.RespondError(c, err, "create hotel "+name)
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	hotelID := c.Param("id")

	var hotel models.Hotel
	if err := hc.db.First(&hotel, "id = ?", hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		} else {
			utils.RespondError(c, err, "load hotel "+hotelID)
		}
		return
	}

	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.SendError(c, http.StatusBadRequest, "Hotel name is required")
		return
	}

	if err := hc.db.Model(&hotel).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, "Hotel with this name already exists")
			return
		}
		utils.RespondError(c, err, "update hotel "+hotelID)
		return
	}

	hotel.Name = name
	c.JSON(http.StatusOK, hotel)
}

// DeleteHotel detaches the hotel from every route before deleting it;
// routes themselves are unaffected.
func (hc *HotelController) DeleteHotel(c *gin.Context) {
	hotelID := c.Param("id")

	var hotel models.Hotel
	if err := hc.db.First(&hotel, "id = ?", hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		} else {
			utils.RespondError(c, err, "load hotel "+hotelID)
		}
		return
	}

	err := hc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM route_hotels WHERE hotel_id = ?", hotelID).Error; err != nil {
			return err
		}
		return tx.Delete(&hotel).Error
	})
	if err != nil {
		utils.RespondError(c, err, "delete hotel "+hotelID)
		return
	}

	c.Status(http.StatusNoContent)
}
