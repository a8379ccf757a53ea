package api

import (
	"errors"
	"net/http"

	reqdto "kelurahan-booking/internal/handler/dto/request"
	resdto "kelurahan-booking/internal/handler/dto/response"
	"kelurahan-booking/internal/usecase/commands"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GuestHandler struct {
	guestCommands commands.GuestCommands
	guestQueries  queries.GuestQueries
}

func NewGuestHandler(guestCommands commands.GuestCommands, guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		guestCommands: guestCommands,
		guestQueries:  guestQueries,
	}
}

// @Summary List guests
// @Description List logbook entries ordered by visit date and number
// @Tags guests
// @Produce json
// @Success 200 {array} resdto.GuestResponse
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	views, err := h.guestQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestViews(views))
}

// @Summary Get guest
// @Description Get logbook entry by ID
// @Tags guests
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary Create guest
// @Description Add a logbook entry; the per-date number is assigned automatically
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.GuestRequest true "Guest entry"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	view, err := h.guestCommands.Create(c.Request.Context(), in)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}

// @Summary Update guest
// @Description Replace a logbook entry
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body reqdto.GuestRequest true "Guest entry"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [put]
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return
	}

	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	view, err := h.guestCommands.Update(c.Request.Context(), id, in)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary Delete guest
// @Description Remove a logbook entry and compact the day's numbering
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [delete]
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return
	}

	if err := h.guestCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Guest deleted",
	})
}

func (h *GuestHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest not found",
		})
	case errors.Is(err, commands.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
