package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles conocidos por el sistema. La tabla permisos_categoria usa estos
// mismos valores como clave compuesta (rol, id_categoria).
const (
	RolAdministrador = "administrador"
	RolSupervisor    = "supervisor"
	RolSoporteTI     = "soporte_ti"
	RolMantenimiento = "mantenimiento"
	RolDocente       = "docente"
)

// Usuario Model with Pointers for Nullable Fields
type Usuario struct {
	ID           int64  `json:"id" db:"id"`
	Nombre       string `json:"nombre" db:"nombre"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Rol          string `json:"rol" db:"rol"`
	Activo       bool   `json:"activo" db:"activo"`

	FechaCreacion time.Time  `json:"fecha_creacion" db:"fecha_creacion"`
	UltimoAcceso  *time.Time `json:"ultimo_acceso,omitempty" db:"ultimo_acceso"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

// bcryptCost matches the cost the existing user records were hashed with.
const bcryptCost = 12

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcryptCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// --- API Input Structs ---

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateUsuarioInput struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Rol      string `json:"rol"` // vacío = docente
}
