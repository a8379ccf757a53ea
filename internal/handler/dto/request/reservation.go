package request

import (
	"time"

	"kelurahan-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateReservationRequest struct {
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	RequestDate  string    `json:"request_date" binding:"omitempty,datetime=2006-01-02"`
	LoanDate     string    `json:"loan_date" binding:"required,datetime=2006-01-02"`
	Session      *string   `json:"session"`
	StartTime    *string   `json:"start_time"`
	EndTime      *string   `json:"end_time"`
	BorrowerName string    `json:"borrower_name" binding:"required"`
	Position     string    `json:"position"`
	NationalID   string    `json:"national_id" binding:"required,natid"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	ItemsBrought string    `json:"items_brought"`
	Purpose      string    `json:"purpose"`
}

func (r *CreateReservationRequest) ToInput() (commands.ReservationInput, error) {
	loanDate, err := time.Parse(dateLayout, r.LoanDate)
	if err != nil {
		return commands.ReservationInput{}, err
	}

	in := commands.ReservationInput{
		RoomID:       r.RoomID,
		LoanDate:     loanDate,
		Session:      r.Session,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		BorrowerName: r.BorrowerName,
		Position:     r.Position,
		NationalID:   r.NationalID,
		Address:      r.Address,
		Phone:        r.Phone,
		ItemsBrought: r.ItemsBrought,
		Purpose:      r.Purpose,
	}

	if r.RequestDate != "" {
		requestDate, err := time.Parse(dateLayout, r.RequestDate)
		if err != nil {
			return commands.ReservationInput{}, err
		}
		in.RequestDate = &requestDate
	}
	return in, nil
}

type DecideReservationRequest struct {
	Decision  string     `json:"decision" binding:"required"`
	DeciderID *uuid.UUID `json:"decider_id"`
}

type CheckReservationQuery struct {
	RoomID string `form:"roomId" binding:"required,uuid"`
	Date   string `form:"date" binding:"required,datetime=2006-01-02"`
}
