package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"galaxydental/services"
	"galaxydental/utils"
)

// ChatHandler answers the site widget's messages with the canned
// keyword responses.
type ChatHandler struct {
	Svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

func (h *ChatHandler) ChatHandler(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "a non-empty 'message' is required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"greeting": services.ChatGreeting,
		"reply":    h.Svc.Reply(input.Message),
	})
}
