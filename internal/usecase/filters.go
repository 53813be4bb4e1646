package usecase

import (
	"sort"
	"strings"

	"hotel-pms/internal/data/entity"
)

// Pure in-memory filter and sort helpers. All of them return fresh slices
// and leave their inputs untouched.

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SearchRooms matches the query against room number and type,
// case-insensitive. An empty query matches everything.
func SearchRooms(rooms []*entity.Room, query string) []*entity.Room {
	out := make([]*entity.Room, 0, len(rooms))
	for _, room := range rooms {
		if query == "" || containsFold(room.RoomNumber, query) || containsFold(string(room.Type), query) {
			out = append(out, room)
		}
	}
	return out
}

func FilterRoomsByStatus(rooms []*entity.Room, status entity.RoomStatus) []*entity.Room {
	out := make([]*entity.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Status == status {
			out = append(out, room)
		}
	}
	return out
}

func FilterRoomsByType(rooms []*entity.Room, roomType entity.RoomType) []*entity.Room {
	out := make([]*entity.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Type == roomType {
			out = append(out, room)
		}
	}
	return out
}

func FilterRoomsByFloor(rooms []*entity.Room, floor int) []*entity.Room {
	out := make([]*entity.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Floor == floor {
			out = append(out, room)
		}
	}
	return out
}

// SortRoomsByNumber returns a new slice sorted by room number. Direction is
// "asc" or "desc"; anything else sorts ascending.
func SortRoomsByNumber(rooms []*entity.Room, direction string) []*entity.Room {
	out := make([]*entity.Room, len(rooms))
	copy(out, rooms)
	sort.SliceStable(out, func(i, j int) bool {
		if direction == "desc" {
			return out[i].RoomNumber > out[j].RoomNumber
		}
		return out[i].RoomNumber < out[j].RoomNumber
	})
	return out
}

func FilterBookingsByStatus(bookings []*entity.Booking, status entity.BookingStatus) []*entity.Booking {
	out := make([]*entity.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.Status == status {
			out = append(out, booking)
		}
	}
	return out
}

// SortBookingsByCheckIn returns a new slice sorted by check-in date.
func SortBookingsByCheckIn(bookings []*entity.Booking, direction string) []*entity.Booking {
	out := make([]*entity.Booking, len(bookings))
	copy(out, bookings)
	sort.SliceStable(out, func(i, j int) bool {
		if direction == "desc" {
			return out[i].CheckInDate.After(out[j].CheckInDate)
		}
		return out[i].CheckInDate.Before(out[j].CheckInDate)
	})
	return out
}

// SearchGuests matches the query against name, email and phone.
func SearchGuests(guests []*entity.Guest, query string) []*entity.Guest {
	out := make([]*entity.Guest, 0, len(guests))
	for _, guest := range guests {
		if query == "" ||
			containsFold(guest.FullName(), query) ||
			containsFold(guest.Email, query) ||
			(guest.Phone != nil && containsFold(*guest.Phone, query)) {
			out = append(out, guest)
		}
	}
	return out
}

// SearchStaff matches the query against first name, last name, email,
// username and position.
func SearchStaff(staff []*entity.User, query string) []*entity.User {
	out := make([]*entity.User, 0, len(staff))
	for _, user := range staff {
		if query == "" ||
			containsFold(user.FirstName, query) ||
			containsFold(user.LastName, query) ||
			containsFold(user.Email, query) ||
			containsFold(user.Username, query) ||
			(user.Position != nil && containsFold(*user.Position, query)) {
			out = append(out, user)
		}
	}
	return out
}

func FilterStaffByDepartment(staff []*entity.User, department string) []*entity.User {
	out := make([]*entity.User, 0, len(staff))
	for _, user := range staff {
		if user.Department != nil && *user.Department == department {
			out = append(out, user)
		}
	}
	return out
}

func FilterStaffByStatus(staff []*entity.User, status entity.EmploymentStatus) []*entity.User {
	out := make([]*entity.User, 0, len(staff))
	for _, user := range staff {
		if user.EmploymentStatus == status {
			out = append(out, user)
		}
	}
	return out
}

// CalculateOccupancyRate returns the occupied percentage rounded to the
// nearest integer. Zero total rooms yields zero.
func CalculateOccupancyRate(totalRooms, occupiedRooms int) int {
	if totalRooms <= 0 {
		return 0
	}
	return int(float64(occupiedRooms)/float64(totalRooms)*100 + 0.5)
}
