package api

import (
	"net/http"
	"time"

	reqdto "kelurahan-booking/internal/handler/dto/request"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistant queries.AssistantQueries
}

func NewAssistantHandler(assistant queries.AssistantQueries) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// @Summary Ask the availability assistant
// @Description Answer a free-text question about room availability
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body reqdto.AssistantRequest true "Question"
// @Success 200 {object} queries.AssistantAnswer
// @Failure 400 {object} map[string]string
// @Router /assistant [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req reqdto.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A prompt is required",
		})
		return
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format",
			})
			return
		}
		date = &parsed
	}

	answer, err := h.assistant.Ask(c.Request.Context(), req.Prompt, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, answer)
}
