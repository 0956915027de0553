package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innkeeper/models"
	"innkeeper/services/booking"
	"innkeeper/services/speech"
	"innkeeper/utils"
)

// BookingHandler serves the external booking-confirmation endpoint.
type BookingHandler struct {
	Finalizer *booking.Finalizer
	Speech    speech.Synthesizer
}

func NewBookingHandler(finalizer *booking.Finalizer, synth speech.Synthesizer) *BookingHandler {
	return &BookingHandler{Finalizer: finalizer, Speech: synth}
}

// HandleConfirm validates and finalizes a booking: POST /confirm/:sessionID.
func (h *BookingHandler) HandleConfirm(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var details models.BookingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	confirmation, err := h.Finalizer.Confirm(c.Request.Context(), sessionID, details)
	if err != nil {
		respondError(c, err)
		return
	}

	if audioURL, err := h.Speech.Render(c.Request.Context(), confirmation.Reply); err != nil {
		utils.GetLogger().Warn("speech rendering failed", zap.Error(err))
	} else {
		confirmation.AudioURL = audioURL
	}
	c.JSON(http.StatusOK, confirmation)
}
