package store

import (
	"errors"
	"strings"
	"time"

	"github.com/Kasane91/Fyuur/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenueRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Area is one (city, state) group on the venues page.
type Area struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []VenueRef `json:"venues"`
}

// RecentVenues returns up to limit venues ordered by listing time, newest
// first. Venues without a listing timestamp are excluded.
func (s *Store) RecentVenues(limit int) ([]models.Venue, error) {
	var venues []models.Venue
	err := s.db.
		Where("listed_at IS NOT NULL").
		Order("listed_at DESC").
		Limit(limit).
		Find(&venues).Error
	return venues, err
}

// VenueAreas groups every venue by (city, state), cities in descending
// order. Venues within a group keep insertion order.
func (s *Store) VenueAreas() ([]Area, error) {
	var venues []models.Venue
	if err := s.db.Order("city DESC, state ASC, created_at ASC").Find(&venues).Error; err != nil {
		return nil, err
	}

	var areas []Area
	index := map[[2]string]int{}
	for _, venue := range venues {
		key := [2]string{venue.City, venue.State}
		i, ok := index[key]
		if !ok {
			areas = append(areas, Area{City: venue.City, State: venue.State})
			i = len(areas) - 1
			index[key] = i
		}
		areas[i].Venues = append(areas[i].Venues, VenueRef{ID: venue.ID, Name: venue.Name})
	}
	return areas, nil
}

// SearchVenues matches term as a case-insensitive substring of name, city
// or state.
func (s *Store) SearchVenues(term string) ([]models.Venue, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var venues []models.Venue
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ?", pattern, pattern, pattern).
		Find(&venues).Error
	return venues, err
}

func (s *Store) VenueByID(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	if err := s.db.Where("id = ?", id).First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (s *Store) CreateVenue(venue *models.Venue) error {
	if venue.ListedAt == nil {
		now := time.Now()
		venue.ListedAt = &now
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
}

func (s *Store) UpdateVenue(venue *models.Venue) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(venue).Error
	})
}

// DeleteVenue removes the venue and its shows in one transaction. A missing
// id is a no-op.
func (s *Store) DeleteVenue(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Venue{}).Error
	})
}
