package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
)

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	return f.all, nil
}

type fakeBookingRoomRepo struct {
	repository.BookingRoomRepository
	bookedIDs []uuid.UUID
}

func (f *fakeBookingRoomRepo) FindBookedRoomIDs(_ context.Context, _, _ time.Time) ([]uuid.UUID, error) {
	return f.bookedIDs, nil
}

func newRoomFixture(rooms *fakeRoomRepo, bookings *fakeBookingRepo, bookingRooms *fakeBookingRoomRepo) RoomService {
	repo := &repository.Repository{
		Room:        rooms,
		Booking:     bookings,
		BookingRoom: bookingRooms,
	}
	return NewRoomService(repo, zap.NewNop())
}

func TestListRooms_AvailabilityWindowExcludesBookedRooms(t *testing.T) {
	room1 := availableRoom("101", entity.RoomTypeSencilla, "850.00")
	room2 := availableRoom("102", entity.RoomTypeSencilla, "850.00")
	room3 := availableRoom("201", entity.RoomTypeDoble, "1200.00")
	rooms := &fakeRoomRepo{all: []*entity.Room{room1, room2, room3}}
	bookingRooms := &fakeBookingRoomRepo{bookedIDs: []uuid.UUID{room2.ID}}
	svc := newRoomFixture(rooms, &fakeBookingRepo{}, bookingRooms)

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	listed, err := svc.ListRooms(context.Background(), RoomListFilters{
		AvailableFrom: &from,
		AvailableTo:   &to,
	})

	require.NoError(t, err)
	require.Len(t, listed, 2)
	numbers := []string{listed[0].RoomNumber, listed[1].RoomNumber}
	assert.ElementsMatch(t, []string{"101", "201"}, numbers)

	// no window keeps the booked room in the listing
	listed, err = svc.ListRooms(context.Background(), RoomListFilters{})
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestRoomStatuses_OccupancyHeadline(t *testing.T) {
	free1 := availableRoom("101", entity.RoomTypeSencilla, "850.00")
	free2 := availableRoom("102", entity.RoomTypeSencilla, "850.00")
	reserved := availableRoom("103", entity.RoomTypeSencilla, "850.00")
	occupied := availableRoom("104", entity.RoomTypeSencilla, "850.00")
	occupied.Status = entity.RoomStatusOcupada

	date := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	booking := makeBookingFor(reserved.ID, date.AddDate(0, 0, -1), date.AddDate(0, 0, 2))

	rooms := &fakeRoomRepo{all: []*entity.Room{free1, free2, reserved, occupied}}
	bookings := &fakeBookingRepo{activeWithRooms: []*entity.BookingWithRooms{booking}}
	svc := newRoomFixture(rooms, bookings, &fakeBookingRoomRepo{})

	board, err := svc.RoomStatuses(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, "2026-04-02", board.Date)
	assert.Equal(t, 4, board.TotalRooms)
	assert.Equal(t, 2, board.OccupiedRooms)
	assert.Equal(t, 50, board.OccupancyRate)
	require.Len(t, board.Rooms, 4)

	byNumber := make(map[string]entity.RoomStatus, len(board.Rooms))
	for _, rs := range board.Rooms {
		byNumber[rs.RoomNumber] = rs.EffectiveStatus
	}
	assert.Equal(t, entity.RoomStatusLibre, byNumber["101"])
	assert.Equal(t, entity.RoomStatusReservada, byNumber["103"])
	assert.Equal(t, entity.RoomStatusOcupada, byNumber["104"])
}
