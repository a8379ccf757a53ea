// Package room models the registry of bookable spaces. The registry is
// read-only from the booking core's perspective; rows are seeded by
// operations.
package room

import "github.com/google/uuid"

type Type string

const (
	// TypeOffice covers the meeting rooms and yard of the municipal
	// office; these book by fixed session.
	TypeOffice Type = "KANTOR"
	// TypeCommunity covers community-center (RPTRA) spaces, which book
	// by explicit hours.
	TypeCommunity Type = "RPTRA"
)

type Room struct {
	ID   uuid.UUID
	Name string
	Type Type
	Code string
}
