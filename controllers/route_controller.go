// File: /controllers/route_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ou8123/findshuttles-sub001/models"
	"github.com/ou8123/findshuttles-sub001/services"
	"github.com/ou8123/findshuttles-sub001/utils"
)

type RouteController struct {
	db           *gorm.DB
	routeService *services.RouteService
	emailService *services.EmailService
}

func NewRouteController(db *gorm.DB, routeService *services.RouteService, emailService *services.EmailService) *RouteController {
	return &RouteController{
		db:           db,
		routeService: routeService,
		emailService: emailService,
	}
}

type RouteRequest struct {
	DepartureCityID   string `json:"departure_city_id" binding:"required"`
	DestinationCityID string `json:"destination_city_id" binding:"required"`
	DisplayName       string `json:"display_name"`

	ViatorWidgetCode      string `json:"viator_widget_code"`
	ViatorDestinationLink string `json:"viator_destination_link"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	SeoDescription  string `json:"seo_description"`

	IsAirportPickup      bool `json:"is_airport_pickup"`
	IsAirportDropoff     bool `json:"is_airport_dropoff"`
	IsCityToCity         bool `json:"is_city_to_city"`
	IsPrivateDriver      bool `json:"is_private_driver"`
	IsSightseeingShuttle bool `json:"is_sightseeing_shuttle"`

	OtherStops             string              `json:"other_stops"`
	TravelTime             string              `json:"travel_time"`
	AdditionalInstructions string              `json:"additional_instructions"`
	MapWaypoints           models.WaypointList `json:"map_waypoints"`
	PossibleNearbyStops    string              `json:"possible_nearby_stops"`

	AmenityIDs []string `json:"amenity_ids"`
	HotelIDs   []string `json:"hotel_ids"`
}

func (rc *RouteController) GetRoutes(c *gin.Context) {
	var routes []models.Route
	err := rc.db.
		Preload("DepartureCity").Preload("DestinationCity").
		Preload("DepartureCountry").Preload("DestinationCountry").
		Order("display_name asc").
		Find(&routes).Error
	if err != nil {
		utils.RespondError(c, err, "list routes")
		return
	}

	c.JSON(http.StatusOK, routes)
}

func (rc *RouteController) GetRoute(c *gin.Context) {
	routeID := c.Param("id")

	var route models.Route
	err := rc.db.
		Preload("DepartureCity").Preload("DestinationCity").
		Preload("DepartureCountry").Preload("DestinationCountry").
		Preload("Amenities").Preload("HotelsServed").
		First(&route, "id = ?", routeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			utils.RespondError(c, err, "load route "+routeID)
		}
		return
	}

	c.JSON(http.StatusOK, route)
}

func (rc *RouteController) CreateRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parts, err := rc.resolveRouteInput(&req)
	if err != nil {
		utils.RespondError(c, err, "create route")
		return
	}

	route := models.Route{
		ID:                   uuid.New().String(),
		RouteSlug:            parts.slug,
		DisplayName:          parts.displayName,
		DepartureCityID:      parts.departure.ID,
		DestinationCityID:    parts.destination.ID,
		DepartureCountryID:   parts.departure.CountryID,
		DestinationCountryID: parts.destination.CountryID,

		ViatorWidgetCode:      req.ViatorWidgetCode,
		ViatorDestinationLink: req.ViatorDestinationLink,
		MetaTitle:             req.MetaTitle,
		MetaDescription:       req.MetaDescription,
		MetaKeywords:          req.MetaKeywords,
		SeoDescription:        req.SeoDescription,

		IsAirportPickup:      req.IsAirportPickup,
		IsAirportDropoff:     req.IsAirportDropoff,
		IsCityToCity:         req.IsCityToCity,
		IsPrivateDriver:      req.IsPrivateDriver,
		IsSightseeingShuttle: req.IsSightseeingShuttle,

		OtherStops:             req.OtherStops,
		TravelTime:             req.TravelTime,
		AdditionalInstructions: req.AdditionalInstructions,
		MapWaypoints:           req.MapWaypoints,
		PossibleNearbyStops:    req.PossibleNearbyStops,
	}

	err = rc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&route).Error; err != nil {
			return err
		}
		if len(parts.amenities) > 0 {
			if err := tx.Model(&route).Association("Amenities").Append(parts.amenities); err != nil {
				return err
			}
		}
		if len(parts.hotels) > 0 {
			if err := tx.Model(&route).Association("HotelsServed").Append(parts.hotels); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, fmt.Sprintf("Route with slug %q already exists", parts.slug))
			return
		}
		utils.RespondError(c, err, "create route "+parts.slug)
		return
	}

	go rc.emailService.NotifyRouteCreated(&route)

	c.JSON(http.StatusCreated, route)
}

// UpdateRoute recomputes the slug from the referenced cities and the
// denormalized country columns from those cities' actual country; neither
// is client-editable.
func (rc *RouteController) UpdateRoute(c *gin.Context) {
	routeID := c.Param("id")

	var route models.Route
	if err := rc.db.First(&route, "id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			utils.RespondError(c, err, "load route "+routeID)
		}
		return
	}

	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parts, err := rc.resolveRouteInput(&req)
	if err != nil {
		utils.RespondError(c, err, "update route "+routeID)
		return
	}

	err = rc.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"route_slug":              parts.slug,
			"display_name":            parts.displayName,
			"departure_city_id":       parts.departure.ID,
			"destination_city_id":     parts.destination.ID,
			"departure_country_id":    parts.departure.CountryID,
			"destination_country_id":  parts.destination.CountryID,
			"viator_widget_code":      req.ViatorWidgetCode,
			"viator_destination_link": req.ViatorDestinationLink,
			"meta_title":              req.MetaTitle,
			"meta_description":        req.MetaDescription,
			"meta_keywords":           req.MetaKeywords,
			"seo_description":         req.SeoDescription,
			"is_airport_pickup":       req.IsAirportPickup,
			"is_airport_dropoff":      req.IsAirportDropoff,
			"is_city_to_city":         req.IsCityToCity,
			"is_private_driver":       req.IsPrivateDriver,
			"is_sightseeing_shuttle":  req.IsSightseeingShuttle,
			"other_stops":             req.OtherStops,
			"travel_time":             req.TravelTime,
			"additional_instructions": req.AdditionalInstructions,
			"map_waypoints":           req.MapWaypoints,
			"possible_nearby_stops":   req.PossibleNearbyStops,
		}
		if err := tx.Model(&route).Updates(updates).Error; err != nil {
			return err
		}

		if err := replaceAssociation(tx, &route, "Amenities", parts.amenities); err != nil {
			return err
		}
		return replaceAssociation(tx, &route, "HotelsServed", parts.hotels)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendError(c, http.StatusConflict, fmt.Sprintf("Route with slug %q already exists", parts.slug))
			return
		}
		utils.RespondError(c, err, "update route "+routeID)
		return
	}

	var updated models.Route
	if err := rc.db.
		Preload("DepartureCity").Preload("DestinationCity").
		Preload("DepartureCountry").Preload("DestinationCountry").
		Preload("Amenities").Preload("HotelsServed").
		First(&updated, "id = ?", routeID).Error; err != nil {
		utils.RespondError(c, err, "reload route "+routeID)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (rc *RouteController) DeleteRoute(c *gin.Context) {
	routeID := c.Param("id")

	var route models.Route
	if err := rc.db.First(&route, "id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			utils.RespondError(c, err, "load route "+routeID)
		}
		return
	}

	err := rc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&route).Association("Amenities").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&route).Association("HotelsServed").Clear(); err != nil {
			return err
		}
		return tx.Delete(&route).Error
	})
	if err != nil {
		utils.RespondError(c, err, "delete route "+routeID)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rc *RouteController) DuplicateRoute(c *gin.Context) {
	routeID := c.Param("id")

	var source models.Route
	if err := rc.db.First(&source, "id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			utils.RespondError(c, err, "load route "+routeID)
		}
		return
	}

	result, err := rc.routeService.Duplicate(routeID)
	if err != nil {
		utils.RespondError(c, err, "duplicate route "+routeID)
		return
	}

	go rc.emailService.NotifyRouteDuplicated(source.RouteSlug, result.NewRouteSlug)

	c.JSON(http.StatusCreated, result)
}

// replaceAssociation swaps a route's relation set wholesale. GORM's
// Replace chokes on a typed nil slice, so an empty set goes through Clear.
func replaceAssociation[T any](tx *gorm.DB, route *models.Route, name string, values []T) error {
	assoc := tx.Model(route).Association(name)
	if len(values) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(values)
}

// uniqueIDs drops repeated IDs, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// routeParts is the validated, store-resolved form of a RouteRequest.
type routeParts struct {
	departure   *models.City
	destination *models.City
	slug        string
	displayName string
	amenities   []models.Amenity
	hotels      []models.Hotel
}

func (rc *RouteController) resolveRouteInput(req *RouteRequest) (*routeParts, error) {
	if req.DepartureCityID == req.DestinationCityID {
		return nil, fmt.Errorf("departure and destination must be different cities: %w", models.ErrValidation)
	}

	var departure, destination models.City
	if err := rc.db.First(&departure, "id = ?", req.DepartureCityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("departure city does not exist: %w", models.ErrValidation)
		}
		return nil, err
	}
	if err := rc.db.First(&destination, "id = ?", req.DestinationCityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("destination city does not exist: %w", models.ErrValidation)
		}
		return nil, err
	}

	slug := departure.Slug + "-to-" + destination.Slug
	if departure.Slug == "" || destination.Slug == "" {
		return nil, fmt.Errorf("city slugs must be non-empty: %w", models.ErrValidation)
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = departure.Name + " to " + destination.Name
	}

	// Repeated IDs in the request collapse to one link each.
	amenityIDs := uniqueIDs(req.AmenityIDs)
	hotelIDs := uniqueIDs(req.HotelIDs)

	var amenities []models.Amenity
	if len(amenityIDs) > 0 {
		if err := rc.db.Find(&amenities, "id IN ?", amenityIDs).Error; err != nil {
			return nil, err
		}
		if len(amenities) != len(amenityIDs) {
			return nil, fmt.Errorf("one or more amenities do not exist: %w", models.ErrValidation)
		}
	}

	var hotels []models.Hotel
	if len(hotelIDs) > 0 {
		if err := rc.db.Find(&hotels, "id IN ?", hotelIDs).Error; err != nil {
			return nil, err
		}
		if len(hotels) != len(hotelIDs) {
			return nil, fmt.Errorf("one or more hotels do not exist: %w", models.ErrValidation)
		}
	}

	return &routeParts{
		departure:   &departure,
		destination: &destination,
		slug:        slug,
		displayName: displayName,
		amenities:   amenities,
		hotels:      hotels,
	}, nil
}
