package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Kasane91/Fyuur/internal/models"
	"github.com/Kasane91/Fyuur/internal/server"
	"github.com/Kasane91/Fyuur/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}))

	st := store.New(db)
	return server.NewRouter(st), st
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateAndFetchVenue(t *testing.T) {
	r, _ := newTestRouter(t)

	form := url.Values{}
	form.Set("name", "Palace Hall")
	form.Set("city", "San Francisco")
	form.Set("state", "CA")
	form.Set("address", "1 Grove St")
	form.Set("phone", "123-123-1234")
	form.Set("website", "https://palacehall.example.com")
	form.Set("seeking_talent", "y")
	form.Set("seeking_description", "Looking for jazz trios.")
	form.Set("genres[0]", "Jazz")
	form.Set("genres[1]", "Folk")

	w := postForm(t, r, "/venues/create", form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	venueID, ok := body["venue_id"].(string)
	require.True(t, ok)

	w = get(t, r, "/venues/"+venueID)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)
	assert.Equal(t, "Palace Hall", detail["name"])
	assert.Equal(t, "San Francisco", detail["city"])
	assert.Equal(t, true, detail["seeking_talent"])
	assert.Equal(t, []any{"Jazz", "Folk"}, detail["genres"])
	assert.EqualValues(t, 0, detail["past_shows_count"])
	assert.EqualValues(t, 0, detail["upcoming_shows_count"])
}

func TestVenueNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(t, r, "/venues/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, r, "/venues/not-a-uuid")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchVenuesSubstring(t *testing.T) {
	r, st := newTestRouter(t)

	venue := models.Venue{Name: "Palace Hall", City: "San Francisco", State: "CA"}
	require.NoError(t, st.CreateVenue(&venue))

	form := url.Values{}
	form.Set("search_term", "ace")
	w := postForm(t, r, "/venues/search", form)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["count"])
}

func TestHomeListsRecent(t *testing.T) {
	r, st := newTestRouter(t)

	venue := models.Venue{Name: "Palace Hall"}
	require.NoError(t, st.CreateVenue(&venue))
	artist := models.Artist{Name: "Guns N Petals"}
	require.NoError(t, st.CreateArtist(&artist))

	w := get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	venues, ok := body["venues"].([]any)
	require.True(t, ok)
	require.Len(t, venues, 1)
	row := venues[0].(map[string]any)
	assert.Equal(t, "Palace Hall", row["name"])
	_, err := time.Parse("2006-01-02", row["listed_at"].(string))
	assert.NoError(t, err)
}

func TestEditArtistAvailabilityFlag(t *testing.T) {
	r, st := newTestRouter(t)

	artist := models.Artist{Name: "Guns N Petals"}
	require.NoError(t, st.CreateArtist(&artist))

	form := url.Values{}
	form.Set("name", "Guns N Petals")
	form.Set("available_from", "2025-08-01")
	form.Set("available_to", "2025-09-01")
	w := postForm(t, r, "/artists/"+artist.ID.String()+"/edit", form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := st.ArtistByID(artist.ID)
	require.NoError(t, err)
	assert.True(t, got.ListsAvailable)

	form = url.Values{}
	form.Set("name", "Guns N Petals")
	w = postForm(t, r, "/artists/"+artist.ID.String()+"/edit", form)
	require.Equal(t, http.StatusOK, w.Code)

	got, err = st.ArtistByID(artist.ID)
	require.NoError(t, err)
	assert.False(t, got.ListsAvailable)
}

func TestCreateShowAvailabilityConflict(t *testing.T) {
	r, st := newTestRouter(t)

	venue := models.Venue{Name: "Palace Hall"}
	require.NoError(t, st.CreateVenue(&venue))
	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	artist := models.Artist{Name: "Guns N Petals", AvailableFrom: &from, AvailableTo: &to}
	require.NoError(t, st.CreateArtist(&artist))

	form := url.Values{}
	form.Set("artist_id", artist.ID.String())
	form.Set("venue_id", venue.ID.String())
	form.Set("start_time", "2025-10-01 20:00:00")
	w := postForm(t, r, "/shows/create", form)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	form.Set("start_time", "2025-08-15 20:00:00")
	w = postForm(t, r, "/shows/create", form)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = get(t, r, "/shows")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	shows := body["shows"].([]any)
	assert.Len(t, shows, 1)
}

func TestDeleteVenueRoute(t *testing.T) {
	r, st := newTestRouter(t)

	venue := models.Venue{Name: "Palace Hall"}
	require.NoError(t, st.CreateVenue(&venue))

	// Unknown id is a no-op.
	w := postForm(t, r, "/venues/"+uuid.NewString()+"/delete", url.Values{})
	assert.Equal(t, http.StatusOK, w.Code)
	_, err := st.VenueByID(venue.ID)
	require.NoError(t, err)

	w = postForm(t, r, "/venues/"+venue.ID.String()+"/delete", url.Values{})
	assert.Equal(t, http.StatusOK, w.Code)
	_, err = st.VenueByID(venue.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(t, r, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
