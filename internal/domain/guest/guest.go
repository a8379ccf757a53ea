// Package guest models the visitor logbook.
package guest

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPhone = errors.New("phone number must start with 08 and be 10-13 digits")
	ErrMissingName  = errors.New("guest name is required")
)

var phonePattern = regexp.MustCompile(`^08[0-9]{8,11}$`)

func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// FormatName title-cases a name so "BUDI SANTOSO" is stored as
// "Budi Santoso".
func FormatName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Guest is one logbook entry. Number is the visit's sequence within its
// date, assigned on create and compacted when earlier entries are deleted.
type Guest struct {
	ID        uuid.UUID
	Number    int
	VisitDate time.Time
	Name      string
	Address   string
	Phone     string
	Purpose   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Draft struct {
	VisitDate time.Time
	Name      string
	Address   string
	Phone     string
	Purpose   string
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrMissingName
	}
	return ValidatePhone(d.Phone)
}

func New(d Draft) (*Guest, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Guest{
		ID:        uuid.New(),
		VisitDate: d.VisitDate,
		Name:      FormatName(d.Name),
		Address:   d.Address,
		Phone:     d.Phone,
		Purpose:   d.Purpose,
	}, nil
}
