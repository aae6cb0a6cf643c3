package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nirvanjha2004/outflo/internal/message"
)

// MessageGenerator produces an outreach message for a profile.
type MessageGenerator interface {
	Generate(profile message.ProfileInput) string
}

type MessageHandler struct {
	generator MessageGenerator
}

func NewMessageHandler(generator MessageGenerator) *MessageHandler {
	return &MessageHandler{generator: generator}
}

// Create godoc
// @Summary Generate a personalized outreach message
// @Description Writes an outreach message for the given profile. Name, job_title and company are required.
// @Tags messages
// @Accept json
// @Produce json
// @Param profile body message.ProfileInput true "Profile to write for"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Router /personalized-message [post]
func (h *MessageHandler) Create(c *gin.Context) {
	var profile message.ProfileInput
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if missing := profile.MissingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":        false,
			"message":        fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
			"requiredFields": missing,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": h.generator.Generate(profile),
	})
}
