package request

type CreateRateRequest struct {
	RoomID    string   `json:"room_id" validate:"required,uuid4"`
	Name      string   `json:"name" validate:"required,min=1,max=100"`
	Type      string   `json:"type" validate:"required,oneof=BASE SEASONAL WEEKEND SPECIAL"`
	Subtotal  string   `json:"subtotal" validate:"required"`
	ValidFrom *string  `json:"valid_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidTo   *string  `json:"valid_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidDays []string `json:"valid_days,omitempty" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	MinNights *int     `json:"min_nights,omitempty" validate:"omitempty,min=1"`
	MaxNights *int     `json:"max_nights,omitempty" validate:"omitempty,min=1"`
	IsActive  *bool    `json:"is_active,omitempty"`
	IsDefault *bool    `json:"is_default,omitempty"`
}

type UpdateRateRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type      *string  `json:"type,omitempty" validate:"omitempty,oneof=BASE SEASONAL WEEKEND SPECIAL"`
	Subtotal  *string  `json:"subtotal,omitempty"`
	ValidFrom *string  `json:"valid_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidTo   *string  `json:"valid_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidDays []string `json:"valid_days,omitempty" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	MinNights *int     `json:"min_nights,omitempty" validate:"omitempty,min=1"`
	MaxNights *int     `json:"max_nights,omitempty" validate:"omitempty,min=1"`
	IsActive  *bool    `json:"is_active,omitempty"`
	IsDefault *bool    `json:"is_default,omitempty"`
}
