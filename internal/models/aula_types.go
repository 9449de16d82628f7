package models

// Aula is the unit of inventory tracking (classroom, lab, auditorium).
type Aula struct {
	ID        int64   `json:"id" db:"id"`
	Codigo    string  `json:"codigo" db:"codigo"` // unique, stored uppercase
	Nombre    string  `json:"nombre" db:"nombre"`
	Edificio  *string `json:"edificio,omitempty" db:"edificio"`
	Piso      *int    `json:"piso,omitempty" db:"piso"`
	Capacidad *int    `json:"capacidad,omitempty" db:"capacidad"`
	Tipo      string  `json:"tipo" db:"tipo"`
	Activa    bool    `json:"activa" db:"activa"`
}

// --- API Input Structs ---

type CreateAulaInput struct {
	Codigo    string  `json:"codigo" binding:"required"`
	Nombre    string  `json:"nombre" binding:"required"`
	Edificio  *string `json:"edificio"`
	Piso      *int    `json:"piso"`
	Capacidad *int    `json:"capacidad"`
	Tipo      string  `json:"tipo"` // vacío = "aula"
}

type UpdateAulaInput struct {
	Nombre    string  `json:"nombre" binding:"required"`
	Edificio  *string `json:"edificio"`
	Piso      *int    `json:"piso"`
	Capacidad *int    `json:"capacidad"`
	Tipo      string  `json:"tipo"`
	Activa    *bool   `json:"activa"`
}
