package entity

// Turno is a named work shift used to bucket financial movements.
type Turno struct {
	BaseSimple
	Numero int    `db:"numero"`
	Nombre string `db:"nombre"`
}
