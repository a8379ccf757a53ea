package api

import (
	"net/http"
	"time"

	resdto "kelurahan-booking/internal/handler/dto/response"
	"kelurahan-booking/internal/pkg/clock"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
	clock       clock.Clock
}

func NewRoomHandler(roomQueries queries.RoomQueries, clk clock.Clock) *RoomHandler {
	return &RoomHandler{roomQueries: roomQueries, clock: clk}
}

// @Summary List rooms
// @Description List rooms, optionally filtered by mode (office/community) and site code
// @Tags rooms
// @Produce json
// @Param mode query string false "office or community"
// @Param code query string false "Community site code"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	filter := queries.RoomFilter{
		Mode: c.Query("mode"),
		Code: c.Query("code"),
	}

	views, err := h.roomQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary List available rooms
// @Description Rooms with no approved reservation on the date (default today)
// @Tags rooms
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms/available [get]
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	date := clock.Today(h.clock)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format",
			})
			return
		}
		date = parsed
	}

	views, err := h.roomQueries.ListAvailableOn(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
