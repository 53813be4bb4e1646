package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type GuestResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func GuestToResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		ID:        guest.ID.String(),
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		FullName:  guest.FullName(),
		Email:     guest.Email,
		Phone:     guest.Phone,
		Address:   guest.Address,
		CreatedAt: guest.CreatedAt,
	}
}
