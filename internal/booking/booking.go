// Package booking decides whether a requested show may be created and, when
// it may, persists it.
package booking

import (
	"errors"
	"time"

	"github.com/Kasane91/Fyuur/internal/models"
	"github.com/Kasane91/Fyuur/internal/notice"
	"github.com/Kasane91/Fyuur/internal/store"
	"github.com/google/uuid"
)

type Evaluator struct {
	store *store.Store
}

func New(s *store.Store) *Evaluator {
	return &Evaluator{store: s}
}

// Request is a proposed show. ArtistID and VenueID may be uuid.Nil and
// StartTime may be nil when the corresponding form field was absent or
// unparseable; the evaluator turns those into the matching notice.
type Request struct {
	ArtistID  uuid.UUID
	VenueID   uuid.UUID
	StartTime *time.Time
}

// CreateShow runs the booking rule and persists the show when it passes.
//
// An artist without a declared availability window is bookable whenever the
// artist, the venue and a start time are all present. An artist that lists
// availability additionally requires the start time to fall strictly inside
// the window; when it does not, only the conflict notice is reported and the
// existence checks are not reached.
func (e *Evaluator) CreateShow(req Request) (notice.Result, error) {
	artist, err := e.lookupArtist(req.ArtistID)
	if err != nil {
		return notice.Failuref("An error occurred. Show could not be listed."), err
	}
	venue, err := e.lookupVenue(req.VenueID)
	if err != nil {
		return notice.Failuref("An error occurred. Show could not be listed."), err
	}

	if artist != nil && artist.ListsAvailable {
		if !withinWindow(artist, req.StartTime) {
			return notice.Conflictf("Artist is not available at that time."), nil
		}
	}

	switch {
	case artist != nil && venue != nil && req.StartTime != nil:
		show := models.Show{
			ArtistID:  artist.ID,
			VenueID:   venue.ID,
			StartTime: *req.StartTime,
		}
		if err := e.store.CreateShow(&show); err != nil {
			return notice.Failuref("An error occurred. Show could not be listed."), err
		}
		return notice.Successf("Show was successfully listed!"), nil
	case artist == nil && venue != nil:
		return notice.Validationf("The artist does not exist."), nil
	case venue == nil && artist != nil:
		return notice.Validationf("That venue does not exist."), nil
	case req.StartTime == nil:
		return notice.Validationf("A start time is required."), nil
	default:
		return notice.Validationf("Neither the artist nor the venue exists."), nil
	}
}

func (e *Evaluator) lookupArtist(id uuid.UUID) (*models.Artist, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	artist, err := e.store.ArtistByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return artist, err
}

func (e *Evaluator) lookupVenue(id uuid.UUID) (*models.Venue, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	venue, err := e.store.VenueByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return venue, err
}

// withinWindow reports whether t falls strictly between the artist's
// availability bounds. Both ends are exclusive; a missing start time or a
// malformed window never passes.
func withinWindow(artist *models.Artist, t *time.Time) bool {
	if t == nil || artist.AvailableFrom == nil || artist.AvailableTo == nil {
		return false
	}
	return t.After(*artist.AvailableFrom) && t.Before(*artist.AvailableTo)
}
