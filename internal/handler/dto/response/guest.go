package response

import (
	"time"

	"kelurahan-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	VisitDate time.Time `json:"visitDate"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Purpose   string    `json:"purpose"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromGuestView(view *queries.GuestView) *GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromGuestViews(views []*queries.GuestView) []*GuestResponse {
	out := make([]*GuestResponse, len(views))
	for i, v := range views {
		out[i] = FromGuestView(v)
	}
	return out
}
