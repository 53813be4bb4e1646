package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type RateResponse struct {
	ID         string          `json:"id"`
	RoomID     string          `json:"room_id"`
	Name       string          `json:"name"`
	Type       entity.RateType `json:"type"`
	Subtotal   string          `json:"subtotal"`
	Tax        string          `json:"tax"`
	ServiceFee string          `json:"service_fee"`
	Total      string          `json:"total"`
	ValidFrom  *string         `json:"valid_from,omitempty"`
	ValidTo    *string         `json:"valid_to,omitempty"`
	ValidDays  []string        `json:"valid_days,omitempty"`
	MinNights  *int            `json:"min_nights,omitempty"`
	MaxNights  *int            `json:"max_nights,omitempty"`
	IsActive   bool            `json:"is_active"`
	IsDefault  bool            `json:"is_default"`
	CreatedAt  time.Time       `json:"created_at"`
}

func RateToResponse(rate *entity.RoomRate) RateResponse {
	resp := RateResponse{
		ID:         rate.ID.String(),
		RoomID:     rate.RoomID.String(),
		Name:       rate.Name,
		Type:       rate.Type,
		Subtotal:   rate.Subtotal.StringFixed(2),
		Tax:        rate.Tax.StringFixed(2),
		ServiceFee: rate.ServiceFee.StringFixed(2),
		Total:      rate.Total.StringFixed(2),
		ValidDays:  rate.ValidDays,
		MinNights:  rate.MinNights,
		MaxNights:  rate.MaxNights,
		IsActive:   rate.IsActive,
		IsDefault:  rate.IsDefault,
		CreatedAt:  rate.CreatedAt,
	}
	if rate.ValidFrom != nil {
		s := rate.ValidFrom.Format("2006-01-02")
		resp.ValidFrom = &s
	}
	if rate.ValidTo != nil {
		s := rate.ValidTo.Format("2006-01-02")
		resp.ValidTo = &s
	}
	return resp
}
