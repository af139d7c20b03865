package handlers

import (
	"log"
	"net/http"

	"github.com/Kasane91/Fyuur/internal/booking"
	"github.com/Kasane91/Fyuur/internal/helpers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var showFormFields = []string{"artist_id", "venue_id", "start_time"}

func ListShows(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	rows, err := st.AllShows()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	shows := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		shows = append(shows, gin.H{
			"venue_id":          row.VenueID,
			"venue_name":        row.VenueName,
			"artist_id":         row.ArtistID,
			"artist_name":       row.ArtistName,
			"artist_image_link": row.ArtistImageLink,
			"start_time":        row.StartTime.Format(startTimeFormat),
		})
	}

	c.JSON(http.StatusOK, gin.H{"shows": shows})
}

// NewShowForm returns the field skeleton the form renderer needs.
func NewShowForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": showFormFields})
}

// CreateShow runs the booking evaluator over the submitted ids and start
// time. Malformed ids fall through as uuid.Nil so the evaluator reports the
// matching missing-entity notice.
func CreateShow(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	artistID, _ := uuid.Parse(c.PostForm("artist_id"))
	venueID, _ := uuid.Parse(c.PostForm("venue_id"))
	startTime, err := helpers.ParseTimeField(c.PostForm("start_time"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start time format.")
		return
	}

	result, err := booking.New(st).CreateShow(booking.Request{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	})
	if err != nil {
		log.Printf("create show: %v", err)
	}

	c.JSON(noticeStatus(result, http.StatusCreated), gin.H{"notice": result})
}
