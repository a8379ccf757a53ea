package response

import (
	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
	Code string    `json:"code,omitempty"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:   view.ID,
		Name: view.Name,
		Type: view.Type,
		Code: view.Code,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(views))
	for i, v := range views {
		out[i] = FromRoomView(v)
	}
	return out
}

type RoomAvailabilityResponse struct {
	ID       uuid.UUID              `json:"id"`
	Name     string                 `json:"name"`
	Type     string                 `json:"type"`
	Occupied []OccupiedSlotResponse `json:"occupied"`
}

func FromRoomAvailability(views []*queries.RoomAvailability) []*RoomAvailabilityResponse {
	out := make([]*RoomAvailabilityResponse, len(views))
	for i, v := range views {
		out[i] = &RoomAvailabilityResponse{
			ID:       v.ID,
			Name:     v.Name,
			Type:     v.Type,
			Occupied: FromOccupiedSlots(v.Occupied),
		}
	}
	return out
}
