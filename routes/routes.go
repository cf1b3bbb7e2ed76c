// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ou8123/findshuttles-sub001/config"
	"github.com/ou8123/findshuttles-sub001/controllers"
	"github.com/ou8123/findshuttles-sub001/middleware"
	"github.com/ou8123/findshuttles-sub001/repositories"
	"github.com/ou8123/findshuttles-sub001/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Services
	emailService := services.NewEmailService(cfg)
	locationService := services.NewLocationService(repositories.NewLocationRepository(db))
	routeService := services.NewRouteService(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	countryController := controllers.NewCountryController(db)
	cityController := controllers.NewCityController(db)
	routeController := controllers.NewRouteController(db, routeService, emailService)
	amenityController := controllers.NewAmenityController(db)
	hotelController := controllers.NewHotelController(db)
	locationController := controllers.NewLocationController(locationService)
	publicController := controllers.NewPublicController(db, cfg.SiteURL)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Public read surface
	r.GET("/routes/:routeSlug", publicController.GetRouteBySlug)
	r.GET("/sitemap.xml", publicController.Sitemap)

	api := r.Group("/api")

	api.GET("/valid-destinations", publicController.GetValidDestinations)

	// Auth routes (public, rate limited against brute force)
	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(10, 5), authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Admin back office: every route behind the admin gate
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/me", authController.Me)

		countries := admin.Group("/countries")
		{
			countries.GET("", countryController.GetCountries)
			countries.POST("", countryController.CreateCountry)
			countries.PUT("/:id", countryController.UpdateCountry)
			countries.DELETE("/:id", countryController.DeleteCountry)
		}

		cities := admin.Group("/cities")
		{
			cities.GET("", cityController.GetCities)
			cities.POST("", cityController.CreateCity)
			cities.PUT("/:id", cityController.UpdateCity)
			cities.DELETE("/:id", cityController.DeleteCity)
		}

		adminRoutes := admin.Group("/routes")
		{
			adminRoutes.GET("", routeController.GetRoutes)
			adminRoutes.POST("", routeController.CreateRoute)
			adminRoutes.GET("/:id", routeController.GetRoute)
			adminRoutes.PUT("/:id", routeController.UpdateRoute)
			adminRoutes.DELETE("/:id", routeController.DeleteRoute)
			adminRoutes.POST("/:id/duplicate", routeController.DuplicateRoute)
		}

		amenities := admin.Group("/amenities")
		{
			amenities.GET("", amenityController.GetAmenities)
			amenities.POST("", amenityController.CreateAmenity)
			amenities.PUT("/:id", amenityController.UpdateAmenity)
			amenities.DELETE("/:id", amenityController.DeleteAmenity)
		}

		hotels := admin.Group("/hotels")
		{
			hotels.GET("", hotelController.GetHotels)
			hotels.POST("", hotelController.CreateHotel)
			hotels.PUT("/:id", hotelController.UpdateHotel)
			hotels.DELETE("/:id", hotelController.DeleteHotel)
		}

		admin.POST("/locations/find-or-create", locationController.FindOrCreateLocation)
	}
}
