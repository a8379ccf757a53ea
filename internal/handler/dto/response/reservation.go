package response

import (
	"time"

	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID  `json:"id"`
	RoomID       uuid.UUID  `json:"roomId"`
	RoomName     string     `json:"roomName"`
	RoomType     string     `json:"roomType"`
	RequestDate  time.Time  `json:"requestDate"`
	LoanDate     time.Time  `json:"loanDate"`
	Session      *string    `json:"session,omitempty"`
	StartTime    *string    `json:"startTime,omitempty"`
	EndTime      *string    `json:"endTime,omitempty"`
	BorrowerName string     `json:"borrowerName"`
	Position     *string    `json:"position,omitempty"`
	NationalID   string     `json:"nationalId"`
	Address      *string    `json:"address,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	ItemsBrought *string    `json:"itemsBrought,omitempty"`
	Purpose      *string    `json:"purpose,omitempty"`
	Status       string     `json:"status"`
	ValidatedAt  *time.Time `json:"validatedAt,omitempty"`
	ValidatedBy  *uuid.UUID `json:"validatedBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type OccupiedSlotResponse struct {
	Session   *string `json:"session,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

func FromOccupiedSlots(slots []queries.OccupiedSlot) []OccupiedSlotResponse {
	out := make([]OccupiedSlotResponse, len(slots))
	for i, s := range slots {
		out[i] = OccupiedSlotResponse(s)
	}
	return out
}
