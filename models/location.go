// File: /models/location.go
package models

import "time"

type Country struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Cities []City `json:"cities,omitempty" gorm:"foreignKey:CountryID"`
}

// City belongs to exactly one Country. Identity is the (name, country_id)
// pair: two countries may each have a "San Jose", one country may not have
// it twice. Slug is derived from the name and is not globally unique.
type City struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255;uniqueIndex:uk_cities_name_country"`
	Slug      string    `json:"slug" gorm:"not null;index;size:255"`
	CountryID string    `json:"country_id" gorm:"not null;size:191;uniqueIndex:uk_cities_name_country"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Country Country `json:"country,omitempty" gorm:"foreignKey:CountryID"`
}
