package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hotel-pms/internal/data/entity"
)

func testRooms() []*entity.Room {
	return []*entity.Room{
		{Base: entity.Base{ID: uuid.New()}, RoomNumber: "101", Type: entity.RoomTypeSencilla, Status: entity.RoomStatusLibre, Floor: 1},
		{Base: entity.Base{ID: uuid.New()}, RoomNumber: "202", Type: entity.RoomTypeDoble, Status: entity.RoomStatusSucia, Floor: 2},
		{Base: entity.Base{ID: uuid.New()}, RoomNumber: "303", Type: entity.RoomTypeSuiteA, Status: entity.RoomStatusLibre, Floor: 3},
	}
}

func TestSearchRooms(t *testing.T) {
	rooms := testRooms()

	assert.Len(t, SearchRooms(rooms, "101"), 1)
	assert.Len(t, SearchRooms(rooms, "sencilla"), 1)
	assert.Len(t, SearchRooms(rooms, ""), 3)
	assert.Empty(t, SearchRooms(rooms, "no-match"))
}

func TestFilterRooms_DoNotMutateInput(t *testing.T) {
	rooms := testRooms()
	original := make([]*entity.Room, len(rooms))
	copy(original, rooms)

	SearchRooms(rooms, "101")
	FilterRoomsByStatus(rooms, entity.RoomStatusLibre)
	FilterRoomsByType(rooms, entity.RoomTypeDoble)
	FilterRoomsByFloor(rooms, 2)
	SortRoomsByNumber(rooms, "desc")

	assert.Equal(t, original, rooms)
	for i := range rooms {
		assert.Same(t, original[i], rooms[i])
	}
}

func TestFilterRooms_ReturnsNewSlice(t *testing.T) {
	rooms := testRooms()

	filtered := FilterRoomsByStatus(rooms, entity.RoomStatusLibre)
	assert.Len(t, filtered, 2)
	assert.NotSame(t, &rooms[0], &filtered[0])

	empty := FilterRoomsByStatus(rooms, entity.RoomStatusBloqueada)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSortRoomsByNumber_AscThenDescReverses(t *testing.T) {
	rooms := []*entity.Room{
		{RoomNumber: "303"},
		{RoomNumber: "101"},
		{RoomNumber: "202"},
	}

	asc := SortRoomsByNumber(rooms, "asc")
	desc := SortRoomsByNumber(rooms, "desc")

	assert.Equal(t, []string{"101", "202", "303"},
		[]string{asc[0].RoomNumber, asc[1].RoomNumber, asc[2].RoomNumber})
	for i := range asc {
		assert.Same(t, asc[i], desc[len(desc)-1-i])
	}

	// input order untouched
	assert.Equal(t, "303", rooms[0].RoomNumber)
}

func TestFilterBookingsByStatus(t *testing.T) {
	bookings := []*entity.Booking{
		{Status: entity.BookingStatusConfirmed},
		{Status: entity.BookingStatusCancelled},
		{Status: entity.BookingStatusCheckedIn},
	}

	confirmed := FilterBookingsByStatus(bookings, entity.BookingStatusConfirmed)
	assert.Len(t, confirmed, 1)
	assert.Same(t, bookings[0], confirmed[0])
}

func TestSortBookingsByCheckIn(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	bookings := []*entity.Booking{
		{CheckInDate: base.AddDate(0, 0, 5)},
		{CheckInDate: base},
		{CheckInDate: base.AddDate(0, 0, 2)},
	}

	sorted := SortBookingsByCheckIn(bookings, "asc")
	assert.Equal(t, base, sorted[0].CheckInDate)
	assert.Equal(t, base.AddDate(0, 0, 5), sorted[2].CheckInDate)

	// input order untouched
	assert.Equal(t, base.AddDate(0, 0, 5), bookings[0].CheckInDate)
}

func TestSearchGuests(t *testing.T) {
	phone := "555-0101"
	guests := []*entity.Guest{
		{FirstName: "María", LastName: "García", Email: "maria@example.com", Phone: &phone},
		{FirstName: "Juan", LastName: "Pérez", Email: "juan@example.com"},
	}

	assert.Len(t, SearchGuests(guests, "garcía"), 1)
	assert.Len(t, SearchGuests(guests, "juan@"), 1)
	assert.Len(t, SearchGuests(guests, "555"), 1)
	assert.Len(t, SearchGuests(guests, ""), 2)
	assert.Empty(t, SearchGuests(guests, "nobody"))
}

func TestSearchStaffAndFilters(t *testing.T) {
	reception := "RECEPCION"
	position := "Recepcionista"
	staff := []*entity.User{
		{FirstName: "Ana", LastName: "López", Email: "ana@hotel.mx", Username: "alopez", Department: &reception, Position: &position, EmploymentStatus: entity.EmploymentActive},
		{FirstName: "Luis", LastName: "Mora", Email: "luis@hotel.mx", Username: "lmora", EmploymentStatus: entity.EmploymentOnLeave},
	}

	assert.Len(t, SearchStaff(staff, "lópez"), 1)
	assert.Len(t, SearchStaff(staff, "recepcionista"), 1)
	assert.Len(t, FilterStaffByDepartment(staff, "RECEPCION"), 1)
	assert.Len(t, FilterStaffByStatus(staff, entity.EmploymentOnLeave), 1)
}

func TestCalculateOccupancyRate(t *testing.T) {
	assert.Equal(t, 50, CalculateOccupancyRate(4, 2))
	assert.Equal(t, 0, CalculateOccupancyRate(0, 2))
	assert.Equal(t, 100, CalculateOccupancyRate(3, 3))
	assert.Equal(t, 33, CalculateOccupancyRate(3, 1))
	assert.Equal(t, 67, CalculateOccupancyRate(3, 2))
}
