package request

// TurnConceptsReportRequest configures the turn-concepts report. Dates are
// inclusive on both ends.
type TurnConceptsReportRequest struct {
	DateFrom      string   `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo        string   `json:"date_to" validate:"required,datetime=2006-01-02"`
	TurnoNumbers  []int    `json:"turno_numbers,omitempty"`
	Currency      string   `json:"currency,omitempty" validate:"omitempty,oneof=MXN USD EUR"`
	PaymentType   string   `json:"payment_type,omitempty"`
	MovementTypes []string `json:"movement_types,omitempty"`
	GroupBy       string   `json:"group_by,omitempty" validate:"omitempty,oneof=turno"`
	Format        string   `json:"format,omitempty" validate:"omitempty,oneof=JSON PDF"`
}
