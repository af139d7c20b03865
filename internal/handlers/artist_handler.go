package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Kasane91/Fyuur/internal/helpers"
	"github.com/Kasane91/Fyuur/internal/models"
	"github.com/Kasane91/Fyuur/internal/notice"
	"github.com/Kasane91/Fyuur/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var artistFormFields = []string{
	"name", "city", "state", "phone", "image_link", "facebook_link",
	"website", "genres", "seeking_venue", "seeking_description",
	"available_from", "available_to",
}

type artistShowView struct {
	VenueID        uuid.UUID `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      string    `json:"start_time"`
}

func artistShowViews(rows []store.ArtistShowRow) []artistShowView {
	views := make([]artistShowView, 0, len(rows))
	for _, row := range rows {
		views = append(views, artistShowView{
			VenueID:        row.VenueID,
			VenueName:      row.VenueName,
			VenueImageLink: row.VenueImageLink,
			StartTime:      row.StartTime.Format(startTimeFormat),
		})
	}
	return views
}

func artistFromForm(c *gin.Context) (models.Artist, error) {
	availableFrom, err := helpers.ParseTimeField(c.PostForm("available_from"))
	if err != nil {
		return models.Artist{}, errors.New("Invalid available_from format.")
	}
	availableTo, err := helpers.ParseTimeField(c.PostForm("available_to"))
	if err != nil {
		return models.Artist{}, errors.New("Invalid available_to format.")
	}

	return models.Artist{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Phone:              c.PostForm("phone"),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website"),
		Genres:             helpers.CollectIndexedField(c, "genres"),
		SeekingVenue:       helpers.ParseBoolField(c.PostForm("seeking_venue")),
		SeekingDescription: c.PostForm("seeking_description"),
		AvailableFrom:      availableFrom,
		AvailableTo:        availableTo,
	}, nil
}

func ListArtists(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	artists, err := st.AllArtists()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

func SearchArtists(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	searchTerm := c.PostForm("search_term")
	artists, err := st.SearchArtists(searchTerm)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}

	data := make([]gin.H, 0, len(artists))
	for _, artist := range artists {
		data = append(data, gin.H{
			"id":    artist.ID,
			"name":  artist.Name,
			"state": artist.State,
			"city":  artist.City,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(artists),
		"data":        data,
		"search_term": searchTerm,
	})
}

// GetArtist assembles the artist detail page. Availability bounds are
// omitted when the artist has not declared a window.
func GetArtist(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	artist, err := st.ArtistByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	past, upcoming, err := st.ArtistShows(id, time.Now())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	payload := gin.H{
		"id":                   artist.ID,
		"name":                 artist.Name,
		"city":                 artist.City,
		"state":                artist.State,
		"phone":                artist.Phone,
		"image_link":           artist.ImageLink,
		"facebook_link":        artist.FacebookLink,
		"website":              artist.Website,
		"genres":               artist.Genres,
		"seeking_venue":        artist.SeekingVenue,
		"seeking_description":  artist.SeekingDescription,
		"lists_available":      artist.ListsAvailable,
		"past_shows":           artistShowViews(past),
		"upcoming_shows":       artistShowViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	}
	if artist.AvailableFrom != nil {
		payload["available_from"] = artist.AvailableFrom.Format("2006-01-02")
	}
	if artist.AvailableTo != nil {
		payload["available_to"] = artist.AvailableTo.Format("2006-01-02")
	}

	c.JSON(http.StatusOK, payload)
}

// NewArtistForm returns the field skeleton the form renderer needs.
func NewArtistForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": artistFormFields})
}

func CreateArtist(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	artist, err := artistFromForm(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if artist.Name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	if err := st.CreateArtist(&artist); err != nil {
		log.Printf("create artist %q: %v", artist.Name, err)
		result := notice.Failuref("An error occurred! %s could not be listed.", artist.Name)
		c.JSON(noticeStatus(result, http.StatusCreated), gin.H{"notice": result})
		return
	}

	result := notice.Successf("Artist %s was successfully listed!", artist.Name)
	c.JSON(noticeStatus(result, http.StatusCreated), gin.H{
		"notice":    result,
		"artist_id": artist.ID,
	})
}

// EditArtistForm returns the record pre-filled for the edit form, or 404.
func EditArtistForm(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	artist, err := st.ArtistByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"fields": artistFormFields, "artist": artist})
}

// EditArtist overwrites every editable field and recomputes the availability
// flag from the submitted bounds.
func EditArtist(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	artist, err := st.ArtistByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	form, err := artistFromForm(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	artist.Name = form.Name
	artist.City = form.City
	artist.State = form.State
	artist.Phone = form.Phone
	artist.ImageLink = form.ImageLink
	artist.FacebookLink = form.FacebookLink
	artist.Website = form.Website
	artist.Genres = form.Genres
	artist.SeekingVenue = form.SeekingVenue
	artist.SeekingDescription = form.SeekingDescription
	artist.AvailableFrom = form.AvailableFrom
	artist.AvailableTo = form.AvailableTo

	if err := st.UpdateArtist(artist); err != nil {
		log.Printf("edit artist %s: %v", artist.ID, err)
		result := notice.Failuref("An error occurred. %s was not successfully edited.", artist.Name)
		c.JSON(noticeStatus(result, http.StatusOK), gin.H{"notice": result})
		return
	}

	result := notice.Successf("%s was successfully edited!", artist.Name)
	c.JSON(noticeStatus(result, http.StatusOK), gin.H{"notice": result})
}
