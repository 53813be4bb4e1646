package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hotel-pms/internal/data/entity"
)

func makeRoom(status entity.RoomStatus) *entity.Room {
	return &entity.Room{
		Base:       entity.Base{ID: uuid.New()},
		RoomNumber: "101",
		Type:       entity.RoomTypeSencilla,
		Status:     status,
	}
}

func makeBookingFor(roomID uuid.UUID, checkIn, checkOut time.Time) *entity.BookingWithRooms {
	return &entity.BookingWithRooms{
		Booking: entity.Booking{
			Base:         entity.Base{ID: uuid.New()},
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Status:       entity.BookingStatusConfirmed,
		},
		RoomIDs: []uuid.UUID{roomID},
	}
}

func TestResolveRoomStatus_MaintenanceAlwaysWins(t *testing.T) {
	room := makeRoom(entity.RoomStatusMantenimiento)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	booking := makeBookingFor(room.ID, date.AddDate(0, 0, -1), date.AddDate(0, 0, 2))

	got := ResolveRoomStatus(room, []*entity.BookingWithRooms{booking}, date)
	assert.Equal(t, entity.RoomStatusMantenimiento, got)
}

func TestResolveRoomStatus_ActiveBookingMakesReservada(t *testing.T) {
	room := makeRoom(entity.RoomStatusLibre)
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	booking := makeBookingFor(room.ID, checkIn, checkOut)

	tests := []struct {
		name string
		date time.Time
		want entity.RoomStatus
	}{
		{"check-in day", checkIn, entity.RoomStatusReservada},
		{"mid stay", checkIn.AddDate(0, 0, 1), entity.RoomStatusReservada},
		{"checkout day is free", checkOut, entity.RoomStatusLibre},
		{"day before check-in", checkIn.AddDate(0, 0, -1), entity.RoomStatusLibre},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRoomStatus(room, []*entity.BookingWithRooms{booking}, tt.date)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRoomStatus_BookingForOtherRoomIgnored(t *testing.T) {
	room := makeRoom(entity.RoomStatusLibre)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	other := makeBookingFor(uuid.New(), date.AddDate(0, 0, -1), date.AddDate(0, 0, 2))

	got := ResolveRoomStatus(room, []*entity.BookingWithRooms{other}, date)
	assert.Equal(t, entity.RoomStatusLibre, got)
}

func TestResolveRoomStatus_SuciaAndPassThrough(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, entity.RoomStatusSucia,
		ResolveRoomStatus(makeRoom(entity.RoomStatusSucia), nil, date))
	assert.Equal(t, entity.RoomStatusLibre,
		ResolveRoomStatus(makeRoom(entity.RoomStatusLibre), nil, date))
	assert.Equal(t, entity.RoomStatusBloqueada,
		ResolveRoomStatus(makeRoom(entity.RoomStatusBloqueada), nil, date))
	assert.Equal(t, entity.RoomStatusLimpieza,
		ResolveRoomStatus(makeRoom(entity.RoomStatusLimpieza), nil, date))
	assert.Equal(t, entity.RoomStatusOcupada,
		ResolveRoomStatus(makeRoom(entity.RoomStatusOcupada), nil, date))
}

func TestResolveRoomStatus_ReservadaBeatsSucia(t *testing.T) {
	room := makeRoom(entity.RoomStatusSucia)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	booking := makeBookingFor(room.ID, date, date.AddDate(0, 0, 1))

	got := ResolveRoomStatus(room, []*entity.BookingWithRooms{booking}, date)
	assert.Equal(t, entity.RoomStatusReservada, got)
}
