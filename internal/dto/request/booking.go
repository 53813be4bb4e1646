package request

// RoomTypeRequest asks for a quantity of rooms of one type.
type RoomTypeRequest struct {
	RoomType string `json:"room_type" validate:"required,oneof=SENCILLA DOBLE TRIPLE SUITE_A SUITE_B"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=20"`
}

// GuestRequest identifies an existing guest by id or describes a new one to
// create inline with the booking.
type GuestRequest struct {
	GuestID   *string `json:"guest_id,omitempty" validate:"omitempty,uuid4"`
	FirstName string  `json:"first_name,omitempty" validate:"required_without=GuestID,omitempty,min=1,max=100"`
	LastName  string  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     string  `json:"email,omitempty" validate:"required_without=GuestID,omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

type CreateBookingRequest struct {
	Guest          GuestRequest      `json:"guest" validate:"required"`
	Rooms          []RoomTypeRequest `json:"rooms" validate:"required,min=1,dive"`
	CheckInDate    string            `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string            `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	NumberOfGuests int               `json:"number_of_guests" validate:"required,min=1"`
	Notes          *string           `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed checked_in checked_out cancelled"`
}

type UpdateBookingNotesRequest struct {
	Notes string `json:"notes" validate:"required,max=2000"`
}

type CreateBookingEventRequest struct {
	Type  string  `json:"type" validate:"required,oneof=CHECKIN CHECKOUT EXTENSION NO_SHOW EARLY_CHECKOUT OTHER"`
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
