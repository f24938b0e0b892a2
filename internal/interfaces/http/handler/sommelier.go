package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mvfrios/queijaria/internal/infrastructure/advisor"
)

// SommelierHandler exposes the cheese-advisor chat
type SommelierHandler struct {
	BaseHandler
	sommelier *advisor.Sommelier
}

// NewSommelierHandler creates a new sommelier handler
func NewSommelierHandler(sommelier *advisor.Sommelier) *SommelierHandler {
	return &SommelierHandler{sommelier: sommelier}
}

// AskRequest is a cheese question
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask forwards the question to the sommelier. Advisor failures come
// back as a friendly answer, never as an HTTP error.
// POST /api/v1/sommelier/ask
func (h *SommelierHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	answer := h.sommelier.Ask(c.Request.Context(), req.Question)
	h.Success(c, gin.H{"answer": answer})
}
