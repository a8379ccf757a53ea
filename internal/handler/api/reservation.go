package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "kelurahan-booking/internal/handler/dto/request"
	resdto "kelurahan-booking/internal/handler/dto/response"
	"kelurahan-booking/internal/handler/middleware"
	"kelurahan-booking/internal/infra"
	"kelurahan-booking/internal/usecase/commands"
	"kelurahan-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary List reservations
// @Description List all reservations, newest loan date first
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	views, err := h.reservationQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromReservationView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Check occupied slots
// @Description List the booked slots for a room on a date
// @Tags reservations
// @Produce json
// @Param roomId query string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.OccupiedSlotResponse
// @Failure 400 {object} map[string]string
// @Router /reservations/check [get]
func (h *ReservationHandler) CheckReservations(c *gin.Context) {
	var query reqdto.CheckReservationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "roomId and date are required",
		})
		return
	}

	roomID, _ := uuid.Parse(query.RoomID)
	date, _ := time.Parse("2006-01-02", query.Date)

	slots, err := h.reservationQueries.CheckOccupied(c.Request.Context(), roomID, date)
	if err != nil {
		// The booking form treats this as "nothing blocks the slot yet";
		// storage trouble must not break it.
		c.JSON(http.StatusOK, []resdto.OccupiedSlotResponse{})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupiedSlots(slots))
}

// @Summary Create reservation
// @Description Submit a new room reservation request
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
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

	view, err := h.reservationCommands.Create(c.Request.Context(), in)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Amend reservation
// @Description Replace the details of an existing reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *ReservationHandler) AmendReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.CreateReservationRequest
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

	view, err := h.reservationCommands.Amend(c.Request.Context(), id, in)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Decide reservation
// @Description Approve or reject a pending reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DecideReservationRequest true "Decision"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/decide [put]
func (h *ReservationHandler) DecideReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.DecideReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	deciderID := uuid.Nil
	if req.DeciderID != nil {
		deciderID = *req.DeciderID
	} else if adminID, ok := middleware.GetAdminID(c); ok {
		deciderID = adminID
	}

	view, err := h.reservationCommands.Decide(c.Request.Context(), id, commands.DecideInput{
		Decision:  req.Decision,
		DeciderID: deciderID,
	})
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Remove a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation deleted",
	})
}

func (h *ReservationHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, commands.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, commands.ErrInvalidDecision):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Decision must be APPROVED or REJECTED",
		})
	case errors.Is(err, commands.ErrSessionTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Session already booked for this room and date",
		})
	case errors.Is(err, commands.ErrTimeOverlap):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Time overlaps another reservation",
		})
	case errors.Is(err, commands.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation has already been decided",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
