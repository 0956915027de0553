package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innkeeper/models"
	"innkeeper/services/dialogue"
	"innkeeper/services/session"
	"innkeeper/services/speech"
	"innkeeper/utils"
)

// ChatHandler serves the conversational endpoints.
type ChatHandler struct {
	Engine   *dialogue.Engine
	Sessions session.Store
	Speech   speech.Synthesizer
}

func NewChatHandler(engine *dialogue.Engine, sessions session.Store, synth speech.Synthesizer) *ChatHandler {
	return &ChatHandler{Engine: engine, Sessions: sessions, Speech: synth}
}

// HandleChat processes one turn: POST /chat/:sessionID.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req models.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Message cannot be empty", "")
		return
	}

	outcome, err := h.Engine.ProcessTurn(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	if outcome.Confirmation != nil {
		outcome.Confirmation.AudioURL = h.render(c, outcome.Confirmation.Reply)
		c.JSON(http.StatusOK, outcome.Confirmation)
		return
	}
	outcome.Turn.AudioURL = h.render(c, outcome.Turn.Reply)
	c.JSON(http.StatusOK, outcome.Turn)
}

// HandleReset undoes the last exchange: POST /reset/:sessionID. An unknown
// session is a reportable status, not an error.
func (h *ChatHandler) HandleReset(c *gin.Context) {
	status, err := h.Sessions.ResetLast(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// render synthesizes the reply audio. The textual reply is its own fallback:
// a failed synthesis only drops the audio handle.
func (h *ChatHandler) render(c *gin.Context, reply string) string {
	audioURL, err := h.Speech.Render(c.Request.Context(), reply)
	if err != nil {
		utils.GetLogger().Warn("speech rendering failed", zap.Error(err))
		return ""
	}
	return audioURL
}
