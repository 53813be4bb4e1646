package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type RoomResponse struct {
	ID            string            `json:"id"`
	RoomNumber    string            `json:"room_number"`
	Type          entity.RoomType   `json:"type"`
	Capacity      int               `json:"capacity"`
	PricePerNight string            `json:"price_per_night"`
	Status        entity.RoomStatus `json:"status"`
	Floor         int               `json:"floor"`
	Amenities     []string          `json:"amenities"`
	IsAvailable   bool              `json:"is_available"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// RoomStatusResponse reports the status a room presents for a given date,
// which may differ from its stored status.
type RoomStatusResponse struct {
	RoomResponse
	EffectiveStatus entity.RoomStatus `json:"effective_status"`
	Date            string            `json:"date"`
}

// RoomStatusBoardResponse is the full house view for a date: every room's
// effective status plus the occupancy headline.
type RoomStatusBoardResponse struct {
	Date          string               `json:"date"`
	TotalRooms    int                  `json:"total_rooms"`
	OccupiedRooms int                  `json:"occupied_rooms"`
	OccupancyRate int                  `json:"occupancy_rate"`
	Rooms         []RoomStatusResponse `json:"rooms"`
}

// Helper converters
func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		RoomNumber:    room.RoomNumber,
		Type:          room.Type,
		Capacity:      room.Capacity,
		PricePerNight: room.PricePerNight.StringFixed(2),
		Status:        room.Status,
		Floor:         room.Floor,
		Amenities:     room.Amenities,
		IsAvailable:   room.IsAvailable,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

func RoomToStatusResponse(room *entity.Room, effective entity.RoomStatus, date time.Time) RoomStatusResponse {
	return RoomStatusResponse{
		RoomResponse:    RoomToResponse(room),
		EffectiveStatus: effective,
		Date:            date.Format("2006-01-02"),
	}
}
