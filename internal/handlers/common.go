package handlers

import (
	"net/http"

	"github.com/Kasane91/Fyuur/internal/helpers"
	"github.com/Kasane91/Fyuur/internal/middleware"
	"github.com/Kasane91/Fyuur/internal/notice"
	"github.com/Kasane91/Fyuur/internal/store"
	"github.com/gin-gonic/gin"
)

const startTimeFormat = "2006-01-02 15:04:05"

// storeFrom pulls the injected store handle; a nil return means a 500 has
// already been written.
func storeFrom(c *gin.Context) *store.Store {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
	}
	return st
}

// noticeStatus maps a write outcome to its HTTP status. successStatus lets
// creates answer 201 while edits answer 200.
func noticeStatus(result notice.Result, successStatus int) int {
	switch result.Kind {
	case notice.Success:
		return successStatus
	case notice.Validation:
		return http.StatusBadRequest
	case notice.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
