package store

import (
	"errors"
	"strings"
	"time"

	"github.com/Kasane91/Fyuur/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecentArtists returns up to limit artists ordered by listing time, newest
// first. Artists without a listing timestamp are excluded.
func (s *Store) RecentArtists(limit int) ([]models.Artist, error) {
	var artists []models.Artist
	err := s.db.
		Where("listed_at IS NOT NULL").
		Order("listed_at DESC").
		Limit(limit).
		Find(&artists).Error
	return artists, err
}

func (s *Store) AllArtists() ([]models.Artist, error) {
	var artists []models.Artist
	err := s.db.Order("created_at ASC").Find(&artists).Error
	return artists, err
}

// SearchArtists matches term as a case-insensitive substring of name, city
// or state.
func (s *Store) SearchArtists(term string) ([]models.Artist, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var artists []models.Artist
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ?", pattern, pattern, pattern).
		Find(&artists).Error
	return artists, err
}

func (s *Store) ArtistByID(id uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	if err := s.db.Where("id = ?", id).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (s *Store) CreateArtist(artist *models.Artist) error {
	artist.SyncAvailability()
	if artist.ListedAt == nil {
		now := time.Now()
		artist.ListedAt = &now
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
}

func (s *Store) UpdateArtist(artist *models.Artist) error {
	artist.SyncAvailability()
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(artist).Error
	})
}
