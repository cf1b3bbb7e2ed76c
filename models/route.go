// File: /models/route.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Route struct {
	ID                   string `json:"id" gorm:"primaryKey;size:191"`
	RouteSlug            string `json:"route_slug" gorm:"uniqueIndex;not null;size:255"`
	DisplayName          string `json:"display_name" gorm:"not null;size:255"`
	DepartureCityID      string `json:"departure_city_id" gorm:"not null;size:191"`
	DestinationCityID    string `json:"destination_city_id" gorm:"not null;size:191"`
	DepartureCountryID   string `json:"departure_country_id" gorm:"not null;size:191"`
	DestinationCountryID string `json:"destination_country_id" gorm:"not null;size:191"`

	ViatorWidgetCode      string `json:"viator_widget_code" gorm:"type:text"`
	ViatorDestinationLink string `json:"viator_destination_link" gorm:"size:500"`

	MetaTitle       string `json:"meta_title" gorm:"size:255"`
	MetaDescription string `json:"meta_description" gorm:"size:500"`
	MetaKeywords    string `json:"meta_keywords" gorm:"size:500"`
	SeoDescription  string `json:"seo_description" gorm:"type:text"`

	IsAirportPickup      bool `json:"is_airport_pickup" gorm:"default:false"`
	IsAirportDropoff     bool `json:"is_airport_dropoff" gorm:"default:false"`
	IsCityToCity         bool `json:"is_city_to_city" gorm:"default:true"`
	IsPrivateDriver      bool `json:"is_private_driver" gorm:"default:false"`
	IsSightseeingShuttle bool `json:"is_sightseeing_shuttle" gorm:"default:false"`

	OtherStops             string       `json:"other_stops" gorm:"size:500"`
	TravelTime             string       `json:"travel_time" gorm:"size:100"`
	AdditionalInstructions string       `json:"additional_instructions" gorm:"type:text"`
	MapWaypoints           WaypointList `json:"map_waypoints" gorm:"type:json"`
	PossibleNearbyStops    string       `json:"possible_nearby_stops" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DepartureCity      City      `json:"departure_city,omitempty" gorm:"foreignKey:DepartureCityID"`
	DestinationCity    City      `json:"destination_city,omitempty" gorm:"foreignKey:DestinationCityID"`
	DepartureCountry   Country   `json:"departure_country,omitempty" gorm:"foreignKey:DepartureCountryID"`
	DestinationCountry Country   `json:"destination_country,omitempty" gorm:"foreignKey:DestinationCountryID"`
	Amenities          []Amenity `json:"amenities,omitempty" gorm:"many2many:route_amenities"`
	HotelsServed       []Hotel   `json:"hotels_served,omitempty" gorm:"many2many:route_hotels"`
}

type Hotel struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Waypoint is one stop on the route map preview.
type Waypoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// WaypointList stores the ordered map waypoints as a JSON column.
type WaypointList []Waypoint

func (w WaypointList) Value() (driver.Value, error) {
	if w == nil {
		return json.Marshal(WaypointList{})
	}
	return json.Marshal(w)
}

func (w *WaypointList) Scan(value interface{}) error {
	if value == nil {
		*w = WaypointList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	default:
		return errors.New("type assertion to []byte failed")
	}
}

// GormDataType returns the data type for GORM
func (WaypointList) GormDataType() string {
	return "json"
}
