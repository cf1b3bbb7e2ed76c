// File: /services/route_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ou8123/findshuttles-sub001/models"
)

type RouteService struct {
	db *gorm.DB
}

func NewRouteService(db *gorm.DB) *RouteService {
	return &RouteService{db: db}
}

type DuplicateResult struct {
	NewRouteID   string `json:"new_route_id"`
	NewRouteSlug string `json:"new_route_slug"`
}

// Suffix conventions seen in historical data: "-copy", "-copy-2" and the
// older run-together "copy3". Stripping any of them yields the base slug a
// new copy number is computed against.
var (
	copySlugSuffix = regexp.MustCompile(`(?:-copy(?:-\d+)?|copy\d+)$`)
	copyNameSuffix = regexp.MustCompile(`\s*\(Copy(?: \d+)?\)$`)
)

// Duplicate clones an existing route under a fresh unique slug. Every
// scalar field is copied; amenity and hotel links are connected by
// reference, not deep-cloned. The new route and all of its relation rows
// are created in one transaction so readers never observe a half-built
// duplicate.
func (s *RouteService) Duplicate(routeID string) (*DuplicateResult, error) {
	var src models.Route
	err := s.db.Preload("Amenities").Preload("HotelsServed").First(&src, "id = ?", routeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("route %s does not exist: %w", routeID, models.ErrNotFound)
		}
		return nil, err
	}

	var result DuplicateResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		newSlug, copyNumber, err := nextCopySlug(tx, src.RouteSlug)
		if err != nil {
			return err
		}

		dup := src
		dup.ID = uuid.New().String()
		dup.RouteSlug = newSlug
		dup.DisplayName = copyDisplayName(src.DisplayName, copyNumber)
		dup.CreatedAt = time.Time{}
		dup.UpdatedAt = time.Time{}
		dup.Amenities = nil
		dup.HotelsServed = nil

		if err := tx.Omit(clause.Associations).Create(&dup).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("route slug %q was taken concurrently, retry: %w", newSlug, models.ErrConflict)
			}
			return err
		}

		if len(src.Amenities) > 0 {
			if err := tx.Model(&dup).Association("Amenities").Append(src.Amenities); err != nil {
				return err
			}
		}
		if len(src.HotelsServed) > 0 {
			if err := tx.Model(&dup).Association("HotelsServed").Append(src.HotelsServed); err != nil {
				return err
			}
		}

		result = DuplicateResult{NewRouteID: dup.ID, NewRouteSlug: dup.RouteSlug}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// nextCopySlug strips any existing copy suffix off the source slug, scans
// the slugs sharing that base and picks the lowest unused positive copy
// number. Deleting copy 1 and duplicating again reuses 1; an unbroken run
// extends it.
func nextCopySlug(tx *gorm.DB, sourceSlug string) (string, int, error) {
	base := copySlugSuffix.ReplaceAllString(sourceSlug, "")
	if base == "" {
		base = sourceSlug
	}

	var slugs []string
	err := tx.Model(&models.Route{}).
		Where("route_slug LIKE ?", base+"-copy-%").
		Pluck("route_slug", &slugs).Error
	if err != nil {
		return "", 0, err
	}

	used := make(map[int]bool, len(slugs))
	for _, s := range slugs {
		if n, err := strconv.Atoi(strings.TrimPrefix(s, base+"-copy-")); err == nil && n > 0 {
			used[n] = true
		}
	}

	n := 1
	for used[n] {
		n++
	}

	return fmt.Sprintf("%s-copy-%d", base, n), n, nil
}

func copyDisplayName(name string, copyNumber int) string {
	base := copyNameSuffix.ReplaceAllString(name, "")
	if copyNumber == 1 {
		return base + " (Copy)"
	}
	return fmt.Sprintf("%s (Copy %d)", base, copyNumber)
}
