package request

import (
	"time"

	"kelurahan-booking/internal/usecase/commands"
)

type GuestRequest struct {
	VisitDate string `json:"visit_date" binding:"required,datetime=2006-01-02"`
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Purpose   string `json:"purpose" binding:"required"`
}

func (r *GuestRequest) ToInput() (commands.GuestInput, error) {
	visitDate, err := time.Parse(dateLayout, r.VisitDate)
	if err != nil {
		return commands.GuestInput{}, err
	}
	return commands.GuestInput{
		VisitDate: visitDate,
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		Purpose:   r.Purpose,
	}, nil
}
