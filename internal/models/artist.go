package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	City               string    `gorm:"size:120"`
	State              string    `gorm:"size:120"`
	Phone              string    `gorm:"size:120"`
	ImageLink          string    `gorm:"size:1000"`
	FacebookLink       string    `gorm:"size:120"`
	Website            string    `gorm:"size:250"`
	Genres             []string  `gorm:"serializer:json"`
	SeekingVenue       bool      `gorm:"not null;default:false"`
	SeekingDescription string    `gorm:"size:120"`
	ListedAt           *time.Time
	ListsAvailable     bool `gorm:"not null;default:false"`
	AvailableFrom      *time.Time
	AvailableTo        *time.Time
	Shows              []Show
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (artist *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	return
}

// SyncAvailability keeps ListsAvailable consistent with the window bounds:
// true iff both AvailableFrom and AvailableTo are set. Called on every
// create and edit.
func (artist *Artist) SyncAvailability() {
	artist.ListsAvailable = artist.AvailableFrom != nil && artist.AvailableTo != nil
}
