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

var venueFormFields = []string{
	"name", "city", "state", "address", "phone", "image_link",
	"facebook_link", "website", "genres", "seeking_talent",
	"seeking_description",
}

type venueShowView struct {
	ArtistID        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       string    `json:"start_time"`
}

func venueShowViews(rows []store.VenueShowRow) []venueShowView {
	views := make([]venueShowView, 0, len(rows))
	for _, row := range rows {
		views = append(views, venueShowView{
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       row.StartTime.Format(startTimeFormat),
		})
	}
	return views
}

func venueFromForm(c *gin.Context) models.Venue {
	return models.Venue{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Address:            c.PostForm("address"),
		Phone:              c.PostForm("phone"),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website"),
		Genres:             helpers.CollectIndexedField(c, "genres"),
		SeekingTalent:      helpers.ParseBoolField(c.PostForm("seeking_talent")),
		SeekingDescription: c.PostForm("seeking_description"),
	}
}

// ListVenues groups every venue by (city, state).
func ListVenues(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	areas, err := st.VenueAreas()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

func SearchVenues(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	searchTerm := c.PostForm("search_term")
	venues, err := st.SearchVenues(searchTerm)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}

	data := make([]gin.H, 0, len(venues))
	for _, venue := range venues {
		data = append(data, gin.H{
			"id":    venue.ID,
			"name":  venue.Name,
			"city":  venue.City,
			"state": venue.State,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(venues),
		"data":        data,
		"search_term": searchTerm,
	})
}

// GetVenue assembles the venue detail page: the record itself plus its shows
// partitioned into past and upcoming.
func GetVenue(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	venue, err := st.VenueByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	past, upcoming, err := st.VenueShows(id, time.Now())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                   venue.ID,
		"name":                 venue.Name,
		"city":                 venue.City,
		"state":                venue.State,
		"address":              venue.Address,
		"phone":                venue.Phone,
		"image_link":           venue.ImageLink,
		"facebook_link":        venue.FacebookLink,
		"website":              venue.Website,
		"genres":               venue.Genres,
		"seeking_talent":       venue.SeekingTalent,
		"seeking_description":  venue.SeekingDescription,
		"past_shows":           venueShowViews(past),
		"upcoming_shows":       venueShowViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

// NewVenueForm returns the field skeleton the form renderer needs.
func NewVenueForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": venueFormFields})
}

func CreateVenue(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	venue := venueFromForm(c)
	if venue.Name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	if err := st.CreateVenue(&venue); err != nil {
		log.Printf("create venue %q: %v", venue.Name, err)
		result := notice.Failuref("An error occurred! %s could not be listed.", venue.Name)
		c.JSON(noticeStatus(result, http.StatusCreated), gin.H{"notice": result})
		return
	}

	result := notice.Successf("Venue %s was successfully listed!", venue.Name)
	c.JSON(noticeStatus(result, http.StatusCreated), gin.H{
		"notice":   result,
		"venue_id": venue.ID,
	})
}

// EditVenueForm returns the record pre-filled for the edit form, or 404.
func EditVenueForm(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	venue, err := st.VenueByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"fields": venueFormFields, "venue": venue})
}

// EditVenue overwrites every editable field from the submitted form.
func EditVenue(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	venue, err := st.VenueByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	form := venueFromForm(c)
	venue.Name = form.Name
	venue.City = form.City
	venue.State = form.State
	venue.Address = form.Address
	venue.Phone = form.Phone
	venue.ImageLink = form.ImageLink
	venue.FacebookLink = form.FacebookLink
	venue.Website = form.Website
	venue.Genres = form.Genres
	venue.SeekingTalent = form.SeekingTalent
	venue.SeekingDescription = form.SeekingDescription

	if err := st.UpdateVenue(venue); err != nil {
		log.Printf("edit venue %s: %v", venue.ID, err)
		result := notice.Failuref("An error occurred. %s was not successfully edited.", venue.Name)
		c.JSON(noticeStatus(result, http.StatusOK), gin.H{"notice": result})
		return
	}

	result := notice.Successf("%s was successfully edited!", venue.Name)
	c.JSON(noticeStatus(result, http.StatusOK), gin.H{"notice": result})
}

// DeleteVenue removes the venue and its shows. A missing or malformed id is
// a silent no-op.
func DeleteVenue(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"notice": notice.Successf("The venue has been successfully deleted!")})
		return
	}

	if err := st.DeleteVenue(id); err != nil {
		log.Printf("delete venue %s: %v", id, err)
		result := notice.Failuref("An error occurred. The venue could not be deleted.")
		c.JSON(noticeStatus(result, http.StatusOK), gin.H{"notice": result})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notice": notice.Successf("The venue has been successfully deleted!")})
}
