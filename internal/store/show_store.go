package store

import (
	"time"

	"github.com/Kasane91/Fyuur/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueShowRow is a show on a venue page, joined to its artist.
type VenueShowRow struct {
	ArtistID        uuid.UUID
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShowRow is a show on an artist page, joined to its venue.
type ArtistShowRow struct {
	VenueID        uuid.UUID
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowRow is one line of the shows listing, joined both ways.
type ShowRow struct {
	VenueID         uuid.UUID
	VenueName       string
	ArtistID        uuid.UUID
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueShows partitions a venue's shows around now. Past is strictly before,
// upcoming strictly after; a show starting exactly at now lands in neither.
func (s *Store) VenueShows(venueID uuid.UUID, now time.Time) (past, upcoming []VenueShowRow, err error) {
	base := func() *gorm.DB {
		return s.db.Model(&models.Show{}).
			Select("shows.artist_id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time AS start_time").
			Joins("JOIN artists ON artists.id = shows.artist_id").
			Where("shows.venue_id = ?", venueID)
	}
	if err = base().Where("shows.start_time < ?", now).Order("shows.start_time ASC").Scan(&past).Error; err != nil {
		return nil, nil, err
	}
	if err = base().Where("shows.start_time > ?", now).Order("shows.start_time ASC").Scan(&upcoming).Error; err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

// ArtistShows partitions an artist's shows around now, same bounds as
// VenueShows.
func (s *Store) ArtistShows(artistID uuid.UUID, now time.Time) (past, upcoming []ArtistShowRow, err error) {
	base := func() *gorm.DB {
		return s.db.Model(&models.Show{}).
			Select("shows.venue_id AS venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link, shows.start_time AS start_time").
			Joins("JOIN venues ON venues.id = shows.venue_id").
			Where("shows.artist_id = ?", artistID)
	}
	if err = base().Where("shows.start_time < ?", now).Order("shows.start_time ASC").Scan(&past).Error; err != nil {
		return nil, nil, err
	}
	if err = base().Where("shows.start_time > ?", now).Order("shows.start_time ASC").Scan(&upcoming).Error; err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

// AllShows lists every show, newest start time first.
func (s *Store) AllShows() ([]ShowRow, error) {
	var rows []ShowRow
	err := s.db.Model(&models.Show{}).
		Select("shows.venue_id AS venue_id, venues.name AS venue_name, shows.artist_id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time AS start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Order("shows.start_time DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *Store) CreateShow(show *models.Show) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(show).Error
	})
}
