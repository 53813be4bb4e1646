package request

type CreateRoomRequest struct {
	RoomNumber    string   `json:"room_number" validate:"required,min=1,max=10"`
	Type          string   `json:"type" validate:"required,oneof=SENCILLA DOBLE TRIPLE SUITE_A SUITE_B"`
	Capacity      int      `json:"capacity" validate:"required,min=1,max=10"`
	PricePerNight string   `json:"price_per_night" validate:"required"`
	Floor         int      `json:"floor" validate:"min=0"`
	Amenities     []string `json:"amenities"`
	IsAvailable   *bool    `json:"is_available"`
}

type UpdateRoomRequest struct {
	RoomNumber    *string  `json:"room_number,omitempty" validate:"omitempty,min=1,max=10"`
	Type          *string  `json:"type,omitempty" validate:"omitempty,oneof=SENCILLA DOBLE TRIPLE SUITE_A SUITE_B"`
	Capacity      *int     `json:"capacity,omitempty" validate:"omitempty,min=1,max=10"`
	PricePerNight *string  `json:"price_per_night,omitempty"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=LIBRE RESERVADA OCUPADA EN_MANTENIMIENTO SUCIA BLOQUEADA LIMPIEZA"`
	Floor         *int     `json:"floor,omitempty" validate:"omitempty,min=0"`
	Amenities     []string `json:"amenities,omitempty"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
}
