package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeeper/services/booking"
	"innkeeper/services/llm"
	"innkeeper/utils"
)

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	ChatHandler           gin.HandlerFunc
	ResetSessionHandler   gin.HandlerFunc
	ConfirmBookingHandler gin.HandlerFunc
	ListHotelsHandler     gin.HandlerFunc
	GetAudioHandler       gin.HandlerFunc
	STTHandler            gin.HandlerFunc
}

// respondError maps domain errors onto HTTP statuses: rejected requests keep
// their diagnostic message, upstream failures surface as bad-gateway.
func respondError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	var notFoundErr *booking.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Message)
	case errors.Is(err, llm.ErrUpstream):
		utils.JSONError(c, http.StatusBadGateway, "Upstream service failure", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Processing error", err.Error())
	}
}
