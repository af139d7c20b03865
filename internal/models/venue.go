package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	City               string    `gorm:"size:120"`
	State              string    `gorm:"size:120"`
	Address            string    `gorm:"size:120"`
	Phone              string    `gorm:"size:120"`
	ImageLink          string    `gorm:"size:1000"`
	FacebookLink       string    `gorm:"size:120"`
	Website            string    `gorm:"size:500"`
	Genres             []string  `gorm:"serializer:json"`
	SeekingTalent      bool      `gorm:"not null;default:false"`
	SeekingDescription string    `gorm:"size:180"`
	ListedAt           *time.Time
	Shows              []Show `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (venue *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	return
}
