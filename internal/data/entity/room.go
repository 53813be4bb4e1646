package entity

import (
	"github.com/shopspring/decimal"
)

type RoomType string

const (
	RoomTypeSencilla RoomType = "SENCILLA"
	RoomTypeDoble    RoomType = "DOBLE"
	RoomTypeTriple   RoomType = "TRIPLE"
	RoomTypeSuiteA   RoomType = "SUITE_A"
	RoomTypeSuiteB   RoomType = "SUITE_B"
)

// RoomStatus is the manually managed state of a room. The status shown to
// the front desk is derived per date, see usecase.ResolveRoomStatus.
type RoomStatus string

const (
	RoomStatusLibre         RoomStatus = "LIBRE"
	RoomStatusReservada     RoomStatus = "RESERVADA"
	RoomStatusOcupada       RoomStatus = "OCUPADA"
	RoomStatusMantenimiento RoomStatus = "EN_MANTENIMIENTO"
	RoomStatusSucia         RoomStatus = "SUCIA"
	RoomStatusBloqueada     RoomStatus = "BLOQUEADA"
	RoomStatusLimpieza      RoomStatus = "LIMPIEZA"
)

type Room struct {
	Base
	RoomNumber    string          `db:"room_number"`
	Type          RoomType        `db:"type"`
	Capacity      int             `db:"capacity"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Status        RoomStatus      `db:"status"`
	Floor         int             `db:"floor"`
	Amenities     []string        `db:"amenities"`
	IsAvailable   bool            `db:"is_available"`
}
