// File: /controllers/public_controller.go
package controllers

import (
	"encoding/xml"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ou8123/findshuttles-sub001/models"
	"github.com/ou8123/findshuttles-sub001/utils"
)

// PublicController serves the unauthenticated read surface: route pages,
// destination lookup and the sitemap.
type PublicController struct {
	db      *gorm.DB
	siteURL string
}

func NewPublicController(db *gorm.DB, siteURL string) *PublicController {
	return &PublicController{db: db, siteURL: siteURL}
}

// GetRouteBySlug returns everything a route page renders: the route, its
// cities and countries, amenities, hotels served and SEO meta.
func (pc *PublicController) GetRouteBySlug(c *gin.Context) {
	slug := c.Param("routeSlug")

	var route models.Route
	err := pc.db.
		Preload("DepartureCity").Preload("DestinationCity").
		Preload("DepartureCountry").Preload("DestinationCountry").
		Preload("Amenities").Preload("HotelsServed").
		First(&route, "route_slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			utils.RespondError(c, err, "route page "+slug)
		}
		return
	}

	c.JSON(http.StatusOK, route)
}

// GetValidDestinations lists the unique destination cities reachable from
// a departure city, sorted by name. Backs the search form's second
// dropdown.
func (pc *PublicController) GetValidDestinations(c *gin.Context) {
	departureCityID := c.Query("departureCityId")
	if departureCityID == "" {
		utils.SendError(c, http.StatusBadRequest, "departureCityId is required")
		return
	}

	var departure models.City
	if err := pc.db.First(&departure, "id = ?", departureCityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Departure city not found"})
		} else {
			utils.RespondError(c, err, "valid destinations for "+departureCityID)
		}
		return
	}

	var destinations []models.City
	err := pc.db.
		Distinct("cities.*").
		Joins("JOIN routes ON routes.destination_city_id = cities.id").
		Where("routes.departure_city_id = ?", departureCityID).
		Order("cities.name asc").
		Find(&destinations).Error
	if err != nil {
		utils.RespondError(c, err, "valid destinations for "+departureCityID)
		return
	}

	c.JSON(http.StatusOK, destinations)
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap walks the catalog and renders the XML sitemap: homepage, one URL
// per country, city and route page. Read-only.
func (pc *PublicController) Sitemap(c *gin.Context) {
	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: pc.siteURL}},
	}

	var countries []models.Country
	if err := pc.db.Order("name asc").Find(&countries).Error; err != nil {
		utils.RespondError(c, err, "sitemap countries")
		return
	}
	for _, country := range countries {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     pc.siteURL + "/countries/" + country.Slug,
			LastMod: country.UpdatedAt.Format(time.DateOnly),
		})
	}

	// City slugs are only unique within a country, so city URLs are
	// country-scoped.
	var cities []models.City
	if err := pc.db.Preload("Country").Order("name asc").Find(&cities).Error; err != nil {
		utils.RespondError(c, err, "sitemap cities")
		return
	}
	for _, city := range cities {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     pc.siteURL + "/countries/" + city.Country.Slug + "/cities/" + city.Slug,
			LastMod: city.UpdatedAt.Format(time.DateOnly),
		})
	}

	var routes []models.Route
	if err := pc.db.Order("route_slug asc").Find(&routes).Error; err != nil {
		utils.RespondError(c, err, "sitemap routes")
		return
	}
	for _, route := range routes {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     pc.siteURL + "/routes/" + route.RouteSlug,
			LastMod: route.UpdatedAt.Format(time.DateOnly),
		})
	}

	c.XML(http.StatusOK, urlSet)
}
