package handlers

import (
	"net/http"

	"github.com/Kasane91/Fyuur/internal/helpers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const recentLimit = 10

type recentRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ListedAt string    `json:"listed_at"`
}

// Home returns the ten most recently listed venues and artists.
func Home(c *gin.Context) {
	st := storeFrom(c)
	if st == nil {
		return
	}

	recentVenues, err := st.RecentVenues(recentLimit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}
	recentArtists, err := st.RecentArtists(recentLimit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	venues := make([]recentRow, 0, len(recentVenues))
	for _, venue := range recentVenues {
		if venue.ListedAt == nil {
			continue
		}
		venues = append(venues, recentRow{
			ID:       venue.ID,
			Name:     venue.Name,
			ListedAt: venue.ListedAt.Format("2006-01-02"),
		})
	}

	artists := make([]recentRow, 0, len(recentArtists))
	for _, artist := range recentArtists {
		if artist.ListedAt == nil {
			continue
		}
		artists = append(artists, recentRow{
			ID:       artist.ID,
			Name:     artist.Name,
			ListedAt: artist.ListedAt.Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"venues":  venues,
		"artists": artists,
	})
}
