package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is an owner of one or more vehicles serviced by the shop.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Apellido  string    `gorm:"not null"`
	Email     *string   `gorm:"uniqueIndex"` // optional, unique when present
	Telefono  *string
	Direccion *string
	CreatedAt time.Time

	Vehiculos []Vehiculo `gorm:"foreignKey:ClienteID"`
}
