// README: Chat handlers for the travel assistant conversation.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripwise/internal/modules/chat"
)

type ChatHandler struct {
	session *chat.Session
}

func NewChatHandler(session *chat.Session) *ChatHandler {
	return &ChatHandler{session: session}
}

type chatSendReq struct {
	Message string `json:"message"`
}

// Send handles POST /api/chat/messages.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatSendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	reply, err := h.session.Send(ctx, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeError(c, http.StatusBadGateway, "external service error")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"reply": reply})
}

// Transcript handles GET /api/chat/transcript; the UI re-renders the
// conversation history from it.
func (h *ChatHandler) Transcript(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"messages": h.session.Transcript()})
}
