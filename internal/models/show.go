package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Show struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	StartTime time.Time `gorm:"not null"`
	ArtistID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Artist    Artist
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Venue     Venue
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (show *Show) BeforeCreate(tx *gorm.DB) (err error) {
	if show.ID == uuid.Nil {
		show.ID = uuid.New()
	}
	return
}
