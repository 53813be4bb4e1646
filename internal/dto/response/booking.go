package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type BookingRoomResponse struct {
	RoomID      string          `json:"room_id"`
	RoomNumber  string          `json:"room_number,omitempty"`
	RoomType    entity.RoomType `json:"room_type,omitempty"`
	PriceAtTime string          `json:"price_at_time"`
}

type BookingResponse struct {
	ID             string                `json:"id"`
	BookingCode    string                `json:"booking_code"`
	GuestID        string                `json:"guest_id"`
	GuestName      string                `json:"guest_name,omitempty"`
	CheckInDate    string                `json:"check_in_date"`
	CheckOutDate   string                `json:"check_out_date"`
	NumberOfGuests int                   `json:"number_of_guests"`
	TotalPrice     string                `json:"total_price"`
	Status         entity.BookingStatus  `json:"status"`
	Notes          *string               `json:"notes,omitempty"`
	Rooms          []BookingRoomResponse `json:"rooms,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

type BookingEventResponse struct {
	ID        string                  `json:"id"`
	BookingID string                  `json:"booking_id"`
	Type      entity.BookingEventType `json:"type"`
	Notes     *string                 `json:"notes,omitempty"`
	UserID    *string                 `json:"user_id,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:             booking.ID.String(),
		BookingCode:    booking.BookingCode,
		GuestID:        booking.GuestID.String(),
		CheckInDate:    booking.CheckInDate.Format("2006-01-02"),
		CheckOutDate:   booking.CheckOutDate.Format("2006-01-02"),
		NumberOfGuests: booking.NumberOfGuests,
		TotalPrice:     booking.TotalPrice.StringFixed(2),
		Status:         booking.Status,
		Notes:          booking.Notes,
		CreatedAt:      booking.CreatedAt,
	}
}

func BookingToDetailResponse(booking *entity.Booking, guest *entity.Guest, rooms []*entity.Room, assignments []*entity.BookingRoom) BookingResponse {
	resp := BookingToResponse(booking)
	if guest != nil {
		resp.GuestName = guest.FullName()
	}

	roomsByID := make(map[string]*entity.Room, len(rooms))
	for _, room := range rooms {
		roomsByID[room.ID.String()] = room
	}

	for _, br := range assignments {
		item := BookingRoomResponse{
			RoomID:      br.RoomID.String(),
			PriceAtTime: br.PriceAtTime.StringFixed(2),
		}
		if room, ok := roomsByID[br.RoomID.String()]; ok {
			item.RoomNumber = room.RoomNumber
			item.RoomType = room.Type
		}
		resp.Rooms = append(resp.Rooms, item)
	}

	return resp
}

func BookingEventToResponse(event *entity.BookingEvent) BookingEventResponse {
	resp := BookingEventResponse{
		ID:        event.ID.String(),
		BookingID: event.BookingID.String(),
		Type:      event.Type,
		Notes:     event.Notes,
		CreatedAt: event.CreatedAt,
	}
	if event.UserID != nil {
		id := event.UserID.String()
		resp.UserID = &id
	}
	return resp
}
